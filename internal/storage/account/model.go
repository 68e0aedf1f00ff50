package account

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateName   = errors.New("account with this name already exists")
	ErrDuplicateSymbol = errors.New("account with this symbol already exists")
	ErrNotFound        = errors.New("account not found")
)

// Account represents an account record. Balance is stored and only ever
// moved by ApplyDelta.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Balance        decimal.Decimal `json:"balance"`
	Currency       string          `json:"currency"`
	Symbol         string          `json:"symbol"`
	Color          string          `json:"color"`
	IncludeInTotal bool            `json:"includeInTotal"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// AccountCreate is the input for creating a new account. Balance is the
// opening balance.
type AccountCreate struct {
	Name           string
	Balance        decimal.Decimal
	Currency       string
	Symbol         string
	Color          string
	IncludeInTotal bool
}

// AccountUpdate holds the fields to change; nil fields are left as they are.
// The balance is deliberately absent.
type AccountUpdate struct {
	Name           *string
	Currency       *string
	Symbol         *string
	Color          *string
	IncludeInTotal *bool
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
