package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	Type string `query:"type" enum:"EXPENSE,INCOME" doc:"Only list categories of this type"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body struct {
		Categories []Category `json:"categories" doc:"Categories in creation order"`
	}
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	ListCategories(ctx context.Context) ([]category.Category, error)
	ListCategoriesByType(ctx context.Context, t category.Type) ([]category.Category, error)
}

// ListCategoriesHandler handles GET /v1/category.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/category",
		Summary:     "List categories",
		Description: "Returns all categories, optionally only those of one type.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	var (
		categories []category.Category
		err        error
	)

	stopTimer := logging.Timed(ctx, "listCategoriesMs")
	if input.Type == "" {
		categories, err = h.CategoryService.ListCategories(ctx)
	} else {
		categories, err = h.CategoryService.ListCategoriesByType(ctx, category.Type(input.Type))
	}
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to list categories", err)
	}

	logging.AddData(ctx, "categoryCount", len(categories))

	out := &ListCategoriesOutput{}
	out.Body.Categories = fromStorageList(categories)
	return out, nil
}
