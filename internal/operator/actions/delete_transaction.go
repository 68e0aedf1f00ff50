package actions

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/storage"
)

// DeleteTransaction removes a transaction and reverses its balance effect.
// A missing id is a no-op.
type DeleteTransaction struct {
	ID string

	Deleted bool
}

func (d *DeleteTransaction) ActionName() string { return "DeleteTransaction" }

func (d *DeleteTransaction) Perform(_ context.Context, writer *storage.Writer) error {
	tx := writer.Transaction.FindByID(d.ID)
	if tx == nil {
		return nil
	}

	if writer.Account.FindByID(tx.AccountID) != nil {
		if err := writer.Account.ApplyDelta(tx.AccountID, tx.Delta().Neg()); err != nil {
			return err
		}
	}

	d.Deleted = writer.Transaction.Delete(d.ID) != nil
	return nil
}
