package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/service"
)

// MonthlyExpensesOutput is the Huma output for the monthly expense plan.
type MonthlyExpensesOutput struct {
	Body struct {
		Categories []Category `json:"categories" doc:"Categories flagged as monthly expenses"`
		Total      string     `json:"total" doc:"Sum of their monthly amounts"`
	}
}

// monthlyExpenseLister is the interface for the monthly expense plan.
type monthlyExpenseLister interface {
	ListMonthlyExpenses(ctx context.Context) (*service.MonthlyExpenses, error)
}

// MonthlyExpensesHandler handles GET /v1/category/monthly.
type MonthlyExpensesHandler struct {
	CategoryService monthlyExpenseLister
}

// NewMonthlyExpensesHandler creates a new MonthlyExpensesHandler.
func NewMonthlyExpensesHandler(svc monthlyExpenseLister) *MonthlyExpensesHandler {
	return &MonthlyExpensesHandler{CategoryService: svc}
}

// Register registers the monthly expenses endpoint with the Huma API.
func (h *MonthlyExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-monthly-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/category/monthly",
		Summary:     "Monthly expenses",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *MonthlyExpensesHandler) handle(ctx context.Context, _ *struct{}) (*MonthlyExpensesOutput, error) {
	stopTimer := logging.Timed(ctx, "monthlyExpensesMs")
	monthly, err := h.CategoryService.ListMonthlyExpenses(ctx)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to list monthly expenses", err)
	}

	out := &MonthlyExpensesOutput{}
	out.Body.Categories = fromStorageList(monthly.Categories)
	out.Body.Total = monthly.Total.String()
	return out, nil
}
