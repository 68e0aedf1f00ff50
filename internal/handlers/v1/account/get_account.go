package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
)

// GetAccountInput is the Huma input for fetching one account.
type GetAccountInput struct {
	ID string `path:"id" doc:"Account ID"`
}

// GetAccountOutput is the Huma output for fetching one account.
type GetAccountOutput struct {
	Body Account
}

// accountGetter is the interface for fetching an account by id.
type accountGetter interface {
	GetAccount(ctx context.Context, id string) (*account.Account, error)
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	stopTimer := logging.Timed(ctx, "getAccountMs")
	acc, err := h.AccountService.GetAccount(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to get account", err)
	}
	if acc == nil {
		return nil, huma.Error404NotFound("account not found")
	}

	return &GetAccountOutput{Body: fromStorage(acc)}, nil
}
