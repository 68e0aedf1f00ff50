package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
)

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	ID   string `path:"id" doc:"Account ID"`
	Body UpdateAccountBody
}

// UpdateAccountBody holds the fields to change. Absent fields are kept; the
// balance only moves through transactions and transfers.
type UpdateAccountBody struct {
	Name           *string `json:"name,omitempty" minLength:"1" doc:"Account name"`
	Currency       *string `json:"currency,omitempty" doc:"ISO 4217 currency code"`
	Symbol         *string `json:"symbol,omitempty" minLength:"1" doc:"Short display symbol"`
	Color          *string `json:"color,omitempty" doc:"Display color"`
	IncludeInTotal *bool   `json:"includeInTotal,omitempty" doc:"Whether the balance counts towards the total"`
}

// UpdateAccountOutput is the Huma output for updating an account.
type UpdateAccountOutput struct {
	Body Account
}

// accountUpdater is the interface for updating accounts.
type accountUpdater interface {
	UpdateAccount(ctx context.Context, id string, update account.AccountUpdate) (*account.Account, error)
}

// UpdateAccountHandler handles PATCH /v1/account/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/v1/account/{id}",
		Summary:     "Update an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	update := account.AccountUpdate{
		Name:           input.Body.Name,
		Currency:       input.Body.Currency,
		Symbol:         input.Body.Symbol,
		Color:          input.Body.Color,
		IncludeInTotal: input.Body.IncludeInTotal,
	}

	stopTimer := logging.Timed(ctx, "updateAccountMs")
	updated, err := h.AccountService.UpdateAccount(ctx, input.ID, update)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to update account", err)
	}
	if updated == nil {
		return nil, huma.Error404NotFound("account not found")
	}

	return &UpdateAccountOutput{Body: fromStorage(updated)}, nil
}
