package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name             string `json:"name" minLength:"1" doc:"Category name, unique per type ignoring case"`
	Icon             string `json:"icon,omitempty" doc:"Icon key"`
	Color            string `json:"color,omitempty" doc:"Display color"`
	Type             string `json:"type" enum:"EXPENSE,INCOME" doc:"Category type"`
	IsMonthlyExpense bool   `json:"isMonthlyExpense,omitempty" doc:"Whether this is a recurring monthly expense"`
	MonthlyAmount    string `json:"monthlyAmount,omitempty" doc:"Planned monthly amount"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   Category
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	CreateCategory(ctx context.Context, create category.CategoryCreate) (*category.Category, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/category",
		Summary:     "Create a category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func parseCreateCategoryInput(input *CreateCategoryInput) (category.CategoryCreate, error) {
	monthly, err := handlerutil.ParseOptionalAmount("monthlyAmount", input.Body.MonthlyAmount)
	if err != nil {
		return category.CategoryCreate{}, err
	}

	return category.CategoryCreate{
		Name:             input.Body.Name,
		Icon:             input.Body.Icon,
		Color:            input.Body.Color,
		Type:             category.Type(input.Body.Type),
		IsMonthlyExpense: input.Body.IsMonthlyExpense,
		MonthlyAmount:    monthly,
	}, nil
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	create, err := parseCreateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(ctx, "createCategoryMs")
	created, err := h.CategoryService.CreateCategory(ctx, create)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to create category", err)
	}

	logging.AddData(ctx, "categoryID", created.ID)

	return &CreateCategoryOutput{Status: http.StatusCreated, Body: fromStorage(created)}, nil
}
