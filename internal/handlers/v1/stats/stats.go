package stats

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/service"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

// CategoryStat is the API response model for one category total.
type CategoryStat struct {
	CategoryID       string `json:"categoryId" doc:"Category ID"`
	Name             string `json:"name" doc:"Current category name, empty if the category is gone"`
	Icon             string `json:"icon" doc:"Current category icon"`
	Color            string `json:"color" doc:"Current category color"`
	TotalAmount      string `json:"totalAmount" doc:"Decimal sum of transaction amounts"`
	TransactionCount int    `json:"transactionCount" doc:"Number of transactions summed"`
}

// TransactionStatsBody is the request body for transaction stats.
type TransactionStatsBody struct {
	Start     string `json:"start" doc:"RFC3339 lower date bound, inclusive"`
	End       string `json:"end" doc:"RFC3339 upper date bound, inclusive"`
	Type      string `json:"type,omitempty" enum:"EXPENSE,INCOME" doc:"Only this transaction type"`
	AccountID string `json:"accountId,omitempty" doc:"Only this account"`
}

// TransactionStatsInput is the Huma input for transaction stats.
type TransactionStatsInput struct {
	Body TransactionStatsBody
}

// TransactionStatsOutput is the Huma output for transaction stats.
type TransactionStatsOutput struct {
	Body struct {
		Stats []CategoryStat `json:"stats" doc:"Per-category totals, largest first"`
	}
}

// statsReader is the interface for aggregating transactions.
type statsReader interface {
	GetTransactionStats(ctx context.Context, query service.StatsQuery) ([]service.CategoryStat, error)
}

// TransactionStatsHandler handles POST /v1/stats.
type TransactionStatsHandler struct {
	StatsService statsReader
}

// NewTransactionStatsHandler creates a new TransactionStatsHandler.
func NewTransactionStatsHandler(svc statsReader) *TransactionStatsHandler {
	return &TransactionStatsHandler{StatsService: svc}
}

// Register registers the transaction stats endpoint with the Huma API.
func (h *TransactionStatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transaction-stats",
		Method:      http.MethodPost,
		Path:        "/v1/stats",
		Summary:     "Transaction stats",
		Description: "Totals the transactions in a date range per category.",
		Tags:        []string{"Stats"},
	}, h.handle)
}

func parseTransactionStatsInput(input *TransactionStatsInput) (service.StatsQuery, error) {
	start, err := handlerutil.ParseTime("start", input.Body.Start)
	if err != nil {
		return service.StatsQuery{}, err
	}
	end, err := handlerutil.ParseTime("end", input.Body.End)
	if err != nil {
		return service.StatsQuery{}, err
	}
	if start.IsZero() || end.IsZero() {
		return service.StatsQuery{}, huma.Error400BadRequest("start and end are required")
	}
	if end.Before(start) {
		return service.StatsQuery{}, huma.Error400BadRequest("end must not be before start")
	}

	query := service.StatsQuery{Start: start, End: end, AccountID: input.Body.AccountID}
	if input.Body.Type != "" {
		t := category.Type(input.Body.Type)
		query.Type = &t
	}
	return query, nil
}

func (h *TransactionStatsHandler) handle(ctx context.Context, input *TransactionStatsInput) (*TransactionStatsOutput, error) {
	query, err := parseTransactionStatsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(ctx, "transactionStatsMs")
	stats, err := h.StatsService.GetTransactionStats(ctx, query)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to compute stats", err)
	}

	logging.AddData(ctx, "categoryCount", len(stats))

	out := &TransactionStatsOutput{}
	out.Body.Stats = make([]CategoryStat, len(stats))
	for i, stat := range stats {
		out.Body.Stats[i] = CategoryStat{
			CategoryID:       stat.CategoryID,
			Name:             stat.Name,
			Icon:             stat.Icon,
			Color:            stat.Color,
			TotalAmount:      stat.TotalAmount.String(),
			TransactionCount: stat.TransactionCount,
		}
	}
	return out, nil
}
