package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-ledger/internal/service"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) GetTransactionStats(ctx context.Context, query service.StatsQuery) ([]service.CategoryStat, error) {
	args := m.Called(ctx, query)
	stats, _ := args.Get(0).([]service.CategoryStat)
	return stats, args.Error(1)
}

func TestParseTransactionStatsInput(t *testing.T) {
	query, err := parseTransactionStatsInput(&TransactionStatsInput{Body: TransactionStatsBody{
		Start: "2024-01-01T00:00:00Z",
		End:   "2024-01-31T23:59:59Z",
		Type:  "EXPENSE",
	}})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), query.Start.UTC())
	require.NotNil(t, query.Type)
	assert.Equal(t, category.TypeExpense, *query.Type)
	assert.Empty(t, query.AccountID)
}

func TestParseTransactionStatsInput_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body TransactionStatsBody
	}{
		{"missing start", TransactionStatsBody{End: "2024-01-31T00:00:00Z"}},
		{"bad end", TransactionStatsBody{Start: "2024-01-01T00:00:00Z", End: "soon"}},
		{"reversed", TransactionStatsBody{Start: "2024-02-01T00:00:00Z", End: "2024-01-01T00:00:00Z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTransactionStatsInput(&TransactionStatsInput{Body: tt.body})
			assert.Error(t, err)
		})
	}
}

func TestHTTP_TransactionStats(t *testing.T) {
	svc := new(mockStatsService)
	svc.On("GetTransactionStats", mock.Anything, mock.MatchedBy(func(q service.StatsQuery) bool {
		return q.Type != nil && *q.Type == category.TypeExpense && q.AccountID == "acc-1"
	})).Return([]service.CategoryStat{
		{CategoryID: "food", Name: "Food", Icon: "restaurant", Color: "#FF6B6B", TotalAmount: decimal.RequireFromString("150"), TransactionCount: 2},
	}, nil)

	_, api := humatest.New(t)
	NewTransactionStatsHandler(svc).Register(api)
	resp := api.Post("/v1/stats", TransactionStatsBody{
		Start:     "2024-01-01T00:00:00Z",
		End:       "2024-01-31T00:00:00Z",
		Type:      "EXPENSE",
		AccountID: "acc-1",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Stats []CategoryStat `json:"stats"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []CategoryStat{
		{CategoryID: "food", Name: "Food", Icon: "restaurant", Color: "#FF6B6B", TotalAmount: "150", TransactionCount: 2},
	}, body.Stats)
	svc.AssertExpectations(t)
}

func TestHTTP_TransactionStats_StorageError(t *testing.T) {
	svc := new(mockStatsService)
	svc.On("GetTransactionStats", mock.Anything, mock.Anything).Return(nil, errors.New("read failed"))

	_, api := humatest.New(t)
	NewTransactionStatsHandler(svc).Register(api)
	resp := api.Post("/v1/stats", TransactionStatsBody{Start: "2024-01-01T00:00:00Z", End: "2024-01-31T00:00:00Z"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
