package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	ID string `path:"id" doc:"Category ID"`
}

// DeleteCategoryOutput reports how many transactions were removed with the
// category.
type DeleteCategoryOutput struct {
	Body struct {
		RemovedTransactions int `json:"removedTransactions" doc:"Transactions deleted and reversed with the category"`
	}
}

// categoryDeleter is the interface for deleting categories.
type categoryDeleter interface {
	DeleteCategory(ctx context.Context, id string) (int, error)
}

// DeleteCategoryHandler handles DELETE /v1/category/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/category/{id}",
		Summary:     "Delete a category",
		Description: "Deletes the category and all of its transactions, reversing their effect on account balances. Deleting an unknown id succeeds and removes nothing.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	stopTimer := logging.Timed(ctx, "deleteCategoryMs")
	removed, err := h.CategoryService.DeleteCategory(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to delete category", err)
	}

	logging.AddData(ctx, "removedTransactions", removed)

	out := &DeleteCategoryOutput{}
	out.Body.RemovedTransactions = removed
	return out, nil
}
