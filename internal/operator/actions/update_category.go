package actions

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

// UpdateCategory merges Update into the category. Existing transactions keep
// the type they were created with. Result stays nil when the id does not
// exist.
type UpdateCategory struct {
	ID     string
	Update category.CategoryUpdate

	Result *category.Category
}

func (u *UpdateCategory) ActionName() string { return "UpdateCategory" }

func (u *UpdateCategory) Perform(_ context.Context, writer *storage.Writer) error {
	updated, err := writer.Category.Update(u.ID, &u.Update)
	if err != nil {
		return err
	}

	u.Result = updated
	return nil
}
