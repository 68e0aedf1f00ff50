package account

import (
	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
)

// Account is the API response model for an account.
type Account struct {
	ID             string `json:"id" doc:"Account ID"`
	Name           string `json:"name" doc:"Account name"`
	Balance        string `json:"balance" doc:"Decimal balance"`
	Currency       string `json:"currency" doc:"ISO 4217 currency code"`
	Symbol         string `json:"symbol" doc:"Short display symbol, unique across accounts"`
	Color          string `json:"color" doc:"Display color"`
	IncludeInTotal bool   `json:"includeInTotal" doc:"Whether the balance counts towards the total"`
	CreatedAt      string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt      string `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromStorage(a *account.Account) Account {
	return Account{
		ID:             a.ID,
		Name:           a.Name,
		Balance:        a.Balance.String(),
		Currency:       a.Currency,
		Symbol:         a.Symbol,
		Color:          a.Color,
		IncludeInTotal: a.IncludeInTotal,
		CreatedAt:      handlerutil.FormatTime(a.CreatedAt),
		UpdatedAt:      handlerutil.FormatTime(a.UpdatedAt),
	}
}
