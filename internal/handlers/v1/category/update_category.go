package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

// UpdateCategoryBody holds the fields to change; absent fields are kept.
type UpdateCategoryBody struct {
	Name             *string `json:"name,omitempty" minLength:"1" doc:"Category name"`
	Icon             *string `json:"icon,omitempty" doc:"Icon key"`
	Color            *string `json:"color,omitempty" doc:"Display color"`
	Type             *string `json:"type,omitempty" enum:"EXPENSE,INCOME" doc:"Category type"`
	IsMonthlyExpense *bool   `json:"isMonthlyExpense,omitempty" doc:"Whether this is a recurring monthly expense"`
	MonthlyAmount    string  `json:"monthlyAmount,omitempty" doc:"Planned monthly amount"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category ID"`
	Body UpdateCategoryBody
}

// UpdateCategoryOutput is the Huma output for updating a category.
type UpdateCategoryOutput struct {
	Body Category
}

// categoryUpdater is the interface for updating categories.
type categoryUpdater interface {
	UpdateCategory(ctx context.Context, id string, update category.CategoryUpdate) (*category.Category, error)
}

// UpdateCategoryHandler handles PATCH /v1/category/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/v1/category/{id}",
		Summary:     "Update a category",
		Description: "Existing transactions keep their type when the category type changes.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func parseUpdateCategoryInput(input *UpdateCategoryInput) (category.CategoryUpdate, error) {
	monthly, err := handlerutil.ParseOptionalAmount("monthlyAmount", input.Body.MonthlyAmount)
	if err != nil {
		return category.CategoryUpdate{}, err
	}

	update := category.CategoryUpdate{
		Name:             input.Body.Name,
		Icon:             input.Body.Icon,
		Color:            input.Body.Color,
		IsMonthlyExpense: input.Body.IsMonthlyExpense,
		MonthlyAmount:    monthly,
	}
	if input.Body.Type != nil {
		t := category.Type(*input.Body.Type)
		update.Type = &t
	}
	return update, nil
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	update, err := parseUpdateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(ctx, "updateCategoryMs")
	updated, err := h.CategoryService.UpdateCategory(ctx, input.ID, update)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to update category", err)
	}
	if updated == nil {
		return nil, huma.Error404NotFound("category not found")
	}

	return &UpdateCategoryOutput{Body: fromStorage(updated)}, nil
}
