package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
)

type CreateAccount struct {
	Name           string
	Balance        decimal.Decimal
	Currency       string
	Symbol         string
	Color          string
	IncludeInTotal bool

	Result *account.Account
}

func (c *CreateAccount) ActionName() string { return "CreateAccount" }

func (c *CreateAccount) Perform(_ context.Context, writer *storage.Writer) error {
	currency := c.Currency
	if currency == "" {
		currency = storage.DefaultAccountCurrency
	}
	currency, err := normalizeCurrency(currency)
	if err != nil {
		return err
	}

	created, err := writer.Account.Insert(&account.AccountCreate{
		Name:           c.Name,
		Balance:        c.Balance,
		Currency:       currency,
		Symbol:         c.Symbol,
		Color:          c.Color,
		IncludeInTotal: c.IncludeInTotal,
	})
	if err != nil {
		return err
	}

	c.Result = created
	return nil
}
