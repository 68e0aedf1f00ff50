package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID  string `json:"accountId" minLength:"1" doc:"Account ID"`
	CategoryID string `json:"categoryId" minLength:"1" doc:"Category ID"`
	Type       string `json:"type,omitempty" enum:"EXPENSE,INCOME" doc:"Must match the category type, defaults to it"`
	Amount     string `json:"amount" doc:"Positive decimal amount"`
	Date       string `json:"date,omitempty" doc:"RFC3339 transaction date, defaults to now"`
	Note       string `json:"note,omitempty" doc:"Free-form note"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, create transaction.TransactionCreate) (*transaction.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Records a transaction and applies it to the account balance.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (transaction.TransactionCreate, error) {
	amount, err := handlerutil.ParseAmount("amount", input.Body.Amount)
	if err != nil {
		return transaction.TransactionCreate{}, err
	}
	date, err := handlerutil.ParseTime("date", input.Body.Date)
	if err != nil {
		return transaction.TransactionCreate{}, err
	}

	return transaction.TransactionCreate{
		AccountID:  input.Body.AccountID,
		CategoryID: input.Body.CategoryID,
		Type:       category.Type(input.Body.Type),
		Amount:     amount,
		Date:       date,
		Note:       input.Body.Note,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(ctx, "createTransactionMs")
	created, err := h.TransactionService.CreateTransaction(ctx, create)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to create transaction", err)
	}

	logging.AddData(ctx, "transactionID", created.ID)

	return &CreateTransactionOutput{Status: http.StatusCreated, Body: fromStorage(created)}, nil
}
