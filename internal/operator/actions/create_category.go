package actions

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

type CreateCategory struct {
	Create category.CategoryCreate

	Result *category.Category
}

func (c *CreateCategory) ActionName() string { return "CreateCategory" }

func (c *CreateCategory) Perform(_ context.Context, writer *storage.Writer) error {
	created, err := writer.Category.Insert(&c.Create)
	if err != nil {
		return err
	}

	c.Result = created
	return nil
}
