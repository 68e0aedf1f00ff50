package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
	"github.com/carson-networks/budget-ledger/internal/storage/transfer"
)

// CreateTransfer debits FromAccountID and credits ToAccountID by Amount in
// the same write as the transfer record.
type CreateTransfer struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Date          time.Time
	Note          string

	Result *transfer.Transfer
}

func (t *CreateTransfer) ActionName() string { return "CreateTransfer" }

func (t *CreateTransfer) Perform(_ context.Context, writer *storage.Writer) error {
	if err := requirePositive(t.Amount); err != nil {
		return err
	}
	if t.FromAccountID == t.ToAccountID {
		return transfer.ErrSameAccount
	}
	for _, id := range []string{t.FromAccountID, t.ToAccountID} {
		if writer.Account.FindByID(id) == nil {
			return fmt.Errorf("%w: %q", account.ErrNotFound, id)
		}
	}

	created, err := writer.Transfer.Insert(&transfer.TransferCreate{
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Date:          t.Date,
		Note:          t.Note,
	})
	if err != nil {
		return err
	}

	if err := writer.Account.ApplyDelta(t.FromAccountID, t.Amount.Neg()); err != nil {
		return err
	}
	if err := writer.Account.ApplyDelta(t.ToAccountID, t.Amount); err != nil {
		return err
	}

	t.Result = created
	return nil
}
