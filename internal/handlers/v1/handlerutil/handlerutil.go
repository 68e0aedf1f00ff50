package handlerutil

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/service"
)

// ServiceError maps a service error to the status a client should see:
// 409 for uniqueness conflicts, 404 for a missing referenced entity, 400 for
// rejected input and 500 for anything else, which is a storage failure.
func ServiceError(message string, err error) error {
	switch {
	case errors.Is(err, service.ErrDuplicateAccountName),
		errors.Is(err, service.ErrDuplicateAccountSymbol),
		errors.Is(err, service.ErrDuplicateCategory):
		return huma.NewError(http.StatusConflict, message, err)
	case errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrCategoryNotFound):
		return huma.NewError(http.StatusNotFound, message, err)
	case errors.Is(err, service.ErrCategoryTypeMismatch),
		errors.Is(err, service.ErrInvalidCategoryType),
		errors.Is(err, service.ErrSameAccountTransfer),
		errors.Is(err, service.ErrNonPositiveAmount),
		errors.Is(err, service.ErrUnknownCurrency):
		return huma.NewError(http.StatusBadRequest, message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}

// ParseAmount parses a decimal string field. An empty value is an error.
func ParseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, fmt.Sprintf("invalid %s", field), err)
	}
	return amount, nil
}

// ParseOptionalAmount is ParseAmount with nil for an empty value.
func ParseOptionalAmount(field, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	amount, err := ParseAmount(field, value)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// ParseTime parses an RFC3339 field. An empty value returns the zero time.
func ParseTime(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, fmt.Sprintf("invalid %s", field), err)
	}
	return t, nil
}

// FormatTime is the wire format of every timestamp in responses. Fractional
// seconds are kept so a returned date can be sent back as an exact bound.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
