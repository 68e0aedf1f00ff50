package handlerutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-ledger/internal/service"
)

func TestServiceError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrDuplicateAccountName, http.StatusConflict},
		{service.ErrDuplicateAccountSymbol, http.StatusConflict},
		{fmt.Errorf("wrapped: %w", service.ErrDuplicateCategory), http.StatusConflict},
		{service.ErrAccountNotFound, http.StatusNotFound},
		{service.ErrCategoryNotFound, http.StatusNotFound},
		{service.ErrCategoryTypeMismatch, http.StatusBadRequest},
		{service.ErrInvalidCategoryType, http.StatusBadRequest},
		{service.ErrSameAccountTransfer, http.StatusBadRequest},
		{service.ErrNonPositiveAmount, http.StatusBadRequest},
		{service.ErrUnknownCurrency, http.StatusBadRequest},
		{errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			var statusErr huma.StatusError
			require.ErrorAs(t, ServiceError("failed", tt.err), &statusErr)
			assert.Equal(t, tt.want, statusErr.GetStatus())
		})
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("amount", "12.50")
	require.NoError(t, err)
	assert.Equal(t, "12.5", amount.String())

	_, err = ParseAmount("amount", "twelve")
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.GetStatus())
}

func TestParseOptionalAmount(t *testing.T) {
	amount, err := ParseOptionalAmount("monthlyAmount", "")
	require.NoError(t, err)
	assert.Nil(t, amount)

	amount, err = ParseOptionalAmount("monthlyAmount", "99")
	require.NoError(t, err)
	require.NotNil(t, amount)
	assert.Equal(t, "99", amount.String())
}

func TestParseTime(t *testing.T) {
	parsed, err := ParseTime("date", "")
	require.NoError(t, err)
	assert.True(t, parsed.IsZero())

	parsed, err = ParseTime("date", "2025-01-15T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15T08:30:00Z", FormatTime(parsed))

	_, err = ParseTime("date", "yesterday")
	assert.Error(t, err)
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "2024-03-01T00:00:00Z", FormatTime(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))

	withMillis := time.Date(2024, time.March, 1, 9, 15, 30, 250*int(time.Millisecond), time.UTC)
	formatted := FormatTime(withMillis)
	assert.Equal(t, "2024-03-01T09:15:30.25Z", formatted)

	parsed, err := ParseTime("date", formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(withMillis))
}
