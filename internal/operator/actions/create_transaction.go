package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
)

// CreateTransaction records a transaction and moves its account balance:
// +Amount for INCOME, -Amount for EXPENSE. An empty Type is taken from the
// category.
type CreateTransaction struct {
	AccountID  string
	CategoryID string
	Type       category.Type
	Amount     decimal.Decimal
	Date       time.Time
	Note       string

	Result *transaction.Transaction
}

func (t *CreateTransaction) ActionName() string { return "CreateTransaction" }

func (t *CreateTransaction) Perform(_ context.Context, writer *storage.Writer) error {
	if err := requirePositive(t.Amount); err != nil {
		return err
	}

	acc := writer.Account.FindByID(t.AccountID)
	if acc == nil {
		return fmt.Errorf("%w: %q", account.ErrNotFound, t.AccountID)
	}

	cat := writer.Category.FindByID(t.CategoryID)
	if cat == nil {
		return fmt.Errorf("%w: %q", category.ErrNotFound, t.CategoryID)
	}

	txType := t.Type
	if txType == "" {
		txType = cat.Type
	}
	if !txType.Valid() {
		return category.ErrInvalidType
	}
	if txType != cat.Type {
		return fmt.Errorf("%w: %s transaction in %s category %q", ErrCategoryTypeMismatch, txType, cat.Type, cat.Name)
	}

	created := writer.Transaction.Insert(&transaction.TransactionCreate{
		AccountID:  acc.ID,
		CategoryID: cat.ID,
		Type:       txType,
		Amount:     t.Amount,
		Date:       t.Date,
		Note:       t.Note,
	})

	if err := writer.Account.ApplyDelta(acc.ID, created.Delta()); err != nil {
		return err
	}

	t.Result = created
	return nil
}
