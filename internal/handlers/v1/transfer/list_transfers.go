package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/transfer"
)

// ListTransfersInput is the Huma input for listing transfers.
type ListTransfersInput struct {
	AccountID string `query:"accountId" doc:"Only transfers into or out of this account"`
}

// ListTransfersOutput is the Huma output for listing transfers.
type ListTransfersOutput struct {
	Body struct {
		Transfers []Transfer `json:"transfers" doc:"Transfers in creation order"`
	}
}

// transferLister is the interface for listing transfers.
type transferLister interface {
	ListTransfers(ctx context.Context) ([]transfer.Transfer, error)
	ListTransfersByAccount(ctx context.Context, accountID string) ([]transfer.Transfer, error)
}

// ListTransfersHandler handles GET /v1/transfer.
type ListTransfersHandler struct {
	TransferService transferLister
}

// NewListTransfersHandler creates a new ListTransfersHandler.
func NewListTransfersHandler(svc transferLister) *ListTransfersHandler {
	return &ListTransfersHandler{TransferService: svc}
}

// Register registers the list transfers endpoint with the Huma API.
func (h *ListTransfersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transfers",
		Method:      http.MethodGet,
		Path:        "/v1/transfer",
		Summary:     "List transfers",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *ListTransfersHandler) handle(ctx context.Context, input *ListTransfersInput) (*ListTransfersOutput, error) {
	var (
		transfers []transfer.Transfer
		err       error
	)

	stopTimer := logging.Timed(ctx, "listTransfersMs")
	if input.AccountID == "" {
		transfers, err = h.TransferService.ListTransfers(ctx)
	} else {
		transfers, err = h.TransferService.ListTransfersByAccount(ctx, input.AccountID)
	}
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to list transfers", err)
	}

	logging.AddData(ctx, "transferCount", len(transfers))

	out := &ListTransfersOutput{}
	out.Body.Transfers = make([]Transfer, len(transfers))
	for i := range transfers {
		out.Body.Transfers[i] = fromStorage(&transfers[i])
	}
	return out, nil
}
