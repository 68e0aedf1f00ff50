package actions

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/storage"
)

// DeleteCategory removes a category together with every transaction filed
// under it, reversing each transaction's effect on its account first. The
// ledger ends up as if those transactions had never been recorded.
type DeleteCategory struct {
	ID string

	Deleted             bool
	RemovedTransactions int
}

func (d *DeleteCategory) ActionName() string { return "DeleteCategory" }

func (d *DeleteCategory) Perform(_ context.Context, writer *storage.Writer) error {
	if writer.Category.FindByID(d.ID) == nil {
		return nil
	}

	related := writer.Transaction.ListByCategory(d.ID)
	for _, tx := range related {
		// No account means no balance left to correct.
		if writer.Account.FindByID(tx.AccountID) == nil {
			continue
		}
		if err := writer.Account.ApplyDelta(tx.AccountID, tx.Delta().Neg()); err != nil {
			return err
		}
	}

	d.RemovedTransactions = len(writer.Transaction.DeleteByCategory(d.ID))
	d.Deleted = writer.Category.Delete(d.ID)
	return nil
}
