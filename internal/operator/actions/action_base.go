package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/storage"
)

var (
	ErrNonPositiveAmount    = errors.New("amount must be greater than zero")
	ErrCategoryTypeMismatch = errors.New("transaction type does not match category type")
	ErrUnknownCurrency      = errors.New("unknown currency code")
)

// IAction is one mutation of the ledger document. Perform must finish every
// validation before it changes the writer, so a failed action leaves nothing
// behind even without the rollback.
type IAction interface {
	ActionName() string
	Perform(ctx context.Context, writer *storage.Writer) error
}

func requirePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrNonPositiveAmount, amount.String())
	}
	return nil
}

// normalizeCurrency upper-cases code and checks it is an ISO 4217 code known
// to go-money.
func normalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(code) == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return code, nil
}
