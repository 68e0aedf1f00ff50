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

// ListTransactionsBody is the request body for listing transactions. Every
// filter is optional and they combine; date bounds are inclusive.
type ListTransactionsBody struct {
	Start      string `json:"start,omitempty" doc:"RFC3339 lower date bound"`
	End        string `json:"end,omitempty" doc:"RFC3339 upper date bound"`
	Type       string `json:"type,omitempty" enum:"EXPENSE,INCOME" doc:"Only this transaction type"`
	AccountID  string `json:"accountId,omitempty" doc:"Only this account"`
	CategoryID string `json:"categoryId,omitempty" doc:"Only this category"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions in creation order"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	FilterTransactions(ctx context.Context, filter transaction.TransactionFilter) ([]transaction.Transaction, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns the transactions matching the optional date, type, account and category filters.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput turns the body into a storage filter.
func parseListTransactionsInput(input *ListTransactionsInput) (transaction.TransactionFilter, error) {
	filter := transaction.TransactionFilter{
		AccountID:  input.Body.AccountID,
		CategoryID: input.Body.CategoryID,
	}

	if input.Body.Start != "" {
		start, err := handlerutil.ParseTime("start", input.Body.Start)
		if err != nil {
			return filter, err
		}
		filter.Start = &start
	}
	if input.Body.End != "" {
		end, err := handlerutil.ParseTime("end", input.Body.End)
		if err != nil {
			return filter, err
		}
		filter.End = &end
	}
	if filter.Start != nil && filter.End != nil && filter.End.Before(*filter.Start) {
		return filter, huma.Error400BadRequest("end must not be before start")
	}
	if input.Body.Type != "" {
		t := category.Type(input.Body.Type)
		filter.Type = &t
	}
	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(ctx, "listTransactionsMs")
	transactions, err := h.TransactionService.FilterTransactions(ctx, filter)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to list transactions", err)
	}

	logging.AddData(ctx, "transactionCount", len(transactions))

	resp := ListTransactionsResponseBody{Transactions: make([]Transaction, len(transactions))}
	for i := range transactions {
		resp.Transactions[i] = fromStorage(&transactions[i])
	}
	return &ListTransactionsOutput{Body: resp}, nil
}
