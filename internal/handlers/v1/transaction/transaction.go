package transaction

import (
	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID         string `json:"id" doc:"Transaction ID"`
	AccountID  string `json:"accountId" doc:"Account ID"`
	CategoryID string `json:"categoryId" doc:"Category ID"`
	Type       string `json:"type" enum:"EXPENSE,INCOME" doc:"Transaction type"`
	Amount     string `json:"amount" doc:"Positive decimal amount"`
	Date       string `json:"date" doc:"RFC3339 transaction date"`
	Note       string `json:"note,omitempty" doc:"Free-form note"`
	CreatedAt  string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromStorage(t *transaction.Transaction) Transaction {
	return Transaction{
		ID:         t.ID,
		AccountID:  t.AccountID,
		CategoryID: t.CategoryID,
		Type:       string(t.Type),
		Amount:     t.Amount.String(),
		Date:       handlerutil.FormatTime(t.Date),
		Note:       t.Note,
		CreatedAt:  handlerutil.FormatTime(t.CreatedAt),
	}
}
