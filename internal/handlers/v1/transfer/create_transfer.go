package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/transfer"
)

// CreateTransferBody is the request body for creating a transfer.
type CreateTransferBody struct {
	FromAccountID string `json:"fromAccountId" minLength:"1" doc:"Account to debit"`
	ToAccountID   string `json:"toAccountId" minLength:"1" doc:"Account to credit, must differ from the source"`
	Amount        string `json:"amount" doc:"Positive decimal amount"`
	Date          string `json:"date,omitempty" doc:"RFC3339 transfer date, defaults to now"`
	Note          string `json:"note,omitempty" doc:"Free-form note"`
}

// CreateTransferInput is the Huma input for creating a transfer.
type CreateTransferInput struct {
	Body CreateTransferBody
}

// CreateTransferOutput is the Huma output for creating a transfer.
type CreateTransferOutput struct {
	Status int
	Body   Transfer
}

// transferCreator is the interface for creating transfers.
type transferCreator interface {
	CreateTransfer(ctx context.Context, create transfer.TransferCreate) (*transfer.Transfer, error)
}

// CreateTransferHandler handles POST /v1/transfer.
type CreateTransferHandler struct {
	TransferService transferCreator
}

// NewCreateTransferHandler creates a new CreateTransferHandler.
func NewCreateTransferHandler(svc transferCreator) *CreateTransferHandler {
	return &CreateTransferHandler{TransferService: svc}
}

// Register registers the create transfer endpoint with the Huma API.
func (h *CreateTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transfer",
		Summary:     "Create transfer",
		Description: "Moves an amount from one account to another in a single write.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func parseCreateTransferInput(input *CreateTransferInput) (transfer.TransferCreate, error) {
	amount, err := handlerutil.ParseAmount("amount", input.Body.Amount)
	if err != nil {
		return transfer.TransferCreate{}, err
	}
	date, err := handlerutil.ParseTime("date", input.Body.Date)
	if err != nil {
		return transfer.TransferCreate{}, err
	}

	return transfer.TransferCreate{
		FromAccountID: input.Body.FromAccountID,
		ToAccountID:   input.Body.ToAccountID,
		Amount:        amount,
		Date:          date,
		Note:          input.Body.Note,
	}, nil
}

func (h *CreateTransferHandler) handle(ctx context.Context, input *CreateTransferInput) (*CreateTransferOutput, error) {
	create, err := parseCreateTransferInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(ctx, "createTransferMs")
	created, err := h.TransferService.CreateTransfer(ctx, create)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to create transfer", err)
	}

	logging.AddData(ctx, "transferID", created.ID)

	return &CreateTransferOutput{Status: http.StatusCreated, Body: fromStorage(created)}, nil
}
