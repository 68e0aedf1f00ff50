package transfer

import (
	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/storage/transfer"
)

// Transfer is the API response model for a transfer.
type Transfer struct {
	ID            string `json:"id" doc:"Transfer ID"`
	FromAccountID string `json:"fromAccountId" doc:"Debited account ID"`
	ToAccountID   string `json:"toAccountId" doc:"Credited account ID"`
	Amount        string `json:"amount" doc:"Positive decimal amount"`
	Date          string `json:"date" doc:"RFC3339 transfer date"`
	Note          string `json:"note,omitempty" doc:"Free-form note"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromStorage(t *transfer.Transfer) Transfer {
	return Transfer{
		ID:            t.ID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount.String(),
		Date:          handlerutil.FormatTime(t.Date),
		Note:          t.Note,
		CreatedAt:     handlerutil.FormatTime(t.CreatedAt),
	}
}
