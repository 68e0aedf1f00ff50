package report

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders amount in the display format of its ISO 4217
// currency, e.g. "$1,234.50" or "¥1,235". Amounts are rounded to the
// currency's minor unit.
func FormatAmount(amount decimal.Decimal, code string) string {
	// money.New never returns a nil currency; unknown codes get a generic one.
	m := money.New(0, code)
	minor := amount.Shift(int32(m.Currency().Fraction)).Round(0)
	return money.New(minor.IntPart(), code).Display()
}
