package transaction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

var ErrNotFound = errors.New("transaction not found")

// Transaction represents a transaction record. Type is copied from the
// category at creation time and never re-validated.
type Transaction struct {
	ID         string          `json:"id"`
	AccountID  string          `json:"accountId"`
	CategoryID string          `json:"categoryId"`
	Type       category.Type   `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Delta is the signed change this transaction applied to its account.
func (t *Transaction) Delta() decimal.Decimal {
	if t.Type == category.TypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	AccountID  string
	CategoryID string
	Type       category.Type
	Amount     decimal.Decimal
	Date       time.Time // defaults to now if zero
	Note       string
}

// TransactionFilter selects transactions; zero fields do not filter.
// Start and End are inclusive.
type TransactionFilter struct {
	Start      *time.Time
	End        *time.Time
	Type       *category.Type
	AccountID  string
	CategoryID string
}

func (f *TransactionFilter) matches(t *Transaction) bool {
	if f.Start != nil && t.Date.Before(*f.Start) {
		return false
	}
	if f.End != nil && t.Date.After(*f.End) {
		return false
	}
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.AccountID != "" && t.AccountID != f.AccountID {
		return false
	}
	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}
	return true
}
