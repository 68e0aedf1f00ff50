package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

// MonthlyExpenses lists the categories flagged as recurring monthly expenses
// and the sum of their planned amounts.
type MonthlyExpenses struct {
	Categories []category.Category
	Total      decimal.Decimal
}

// CategoryService handles category business logic.
type CategoryService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, processor actionProcessor) *CategoryService {
	return &CategoryService{storage: store, processor: processor}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]category.Category, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	return reader.Categories.List(), nil
}

func (s *CategoryService) ListCategoriesByType(ctx context.Context, t category.Type) ([]category.Category, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	return reader.Categories.ListByType(t), nil
}

// GetCategory retrieves a category by ID, or nil if there is none.
func (s *CategoryService) GetCategory(ctx context.Context, id string) (*category.Category, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	return reader.Categories.FindByID(id), nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, create category.CategoryCreate) (*category.Category, error) {
	action := &actions.CreateCategory{Create: create}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// UpdateCategory applies update and returns the category, or nil if id does
// not exist.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, update category.CategoryUpdate) (*category.Category, error) {
	action := &actions.UpdateCategory{ID: id, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// DeleteCategory removes the category and its transactions, reversing their
// balance effects. It returns how many transactions went with it; a missing
// id is not an error.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) (int, error) {
	action := &actions.DeleteCategory{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.RemovedTransactions, nil
}

func (s *CategoryService) ListMonthlyExpenses(ctx context.Context) (*MonthlyExpenses, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := &MonthlyExpenses{Categories: make([]category.Category, 0), Total: decimal.Zero}
	for _, c := range categories {
		if !c.IsMonthlyExpense {
			continue
		}
		result.Categories = append(result.Categories, c)
		if c.MonthlyAmount != nil {
			result.Total = result.Total.Add(*c.MonthlyAmount)
		}
	}
	return result, nil
}
