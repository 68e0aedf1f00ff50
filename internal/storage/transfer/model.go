package transfer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrSameAccount = errors.New("transfer source and destination must differ")

// Transfer moves Amount from FromAccountID to ToAccountID. Transfers are
// never deleted.
type Transfer struct {
	ID            string          `json:"id"`
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// TransferCreate is the input for creating a new transfer.
type TransferCreate struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Date          time.Time // defaults to now if zero
	Note          string
}
