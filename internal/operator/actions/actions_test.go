package actions

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-ledger/internal/blobstore"
	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/transfer"
)

const (
	foodID   = "default-expense-food"
	salaryID = "default-income-salary"
)

func newTestWriter(t *testing.T) *storage.Writer {
	t.Helper()
	s := storage.NewStorage(blobstore.NewMemoryStore(), "ledger")
	writer, err := s.Write(context.Background())
	require.NoError(t, err)
	return writer
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func balance(t *testing.T, writer *storage.Writer, id string) decimal.Decimal {
	t.Helper()
	acc := writer.Account.FindByID(id)
	require.NotNil(t, acc)
	return acc.Balance
}

func perform(t *testing.T, writer *storage.Writer, action IAction) {
	t.Helper()
	require.NoError(t, action.Perform(context.Background(), writer))
}

// -- Initialize --

func TestInitialize_MarksSeedDirty(t *testing.T) {
	writer := newTestWriter(t)
	action := &Initialize{}
	perform(t, writer, action)

	assert.True(t, action.Seeded)
	assert.True(t, writer.Dirty())
}

// -- Accounts --

func TestCreateAccount_NormalizesCurrency(t *testing.T) {
	writer := newTestWriter(t)
	action := &CreateAccount{Name: "Travel", Currency: " eur ", Symbol: "T", Balance: dec("20")}
	perform(t, writer, action)

	require.NotNil(t, action.Result)
	assert.Equal(t, "EUR", action.Result.Currency)
	assert.True(t, action.Result.Balance.Equal(dec("20")))
}

func TestCreateAccount_DefaultCurrency(t *testing.T) {
	writer := newTestWriter(t)
	action := &CreateAccount{Name: "Travel", Symbol: "T"}
	perform(t, writer, action)
	assert.Equal(t, storage.DefaultAccountCurrency, action.Result.Currency)
}

func TestCreateAccount_UnknownCurrency(t *testing.T) {
	writer := newTestWriter(t)
	err := (&CreateAccount{Name: "Travel", Currency: "XYZ1", Symbol: "T"}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
	assert.False(t, writer.Dirty())
}

func TestCreateAccount_DuplicateOfSeed(t *testing.T) {
	writer := newTestWriter(t)
	err := (&CreateAccount{Name: "main account", Symbol: "M"}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, account.ErrDuplicateName)

	err = (&CreateAccount{Name: "Other", Symbol: storage.DefaultAccountSymbol}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, account.ErrDuplicateSymbol)
}

func TestUpdateAccount(t *testing.T) {
	writer := newTestWriter(t)
	currency := "gbp"
	action := &UpdateAccount{ID: storage.DefaultAccountID, Update: account.AccountUpdate{Currency: &currency}}
	perform(t, writer, action)
	assert.Equal(t, "GBP", action.Result.Currency)

	missing := &UpdateAccount{ID: "nope", Update: account.AccountUpdate{Currency: &currency}}
	perform(t, writer, missing)
	assert.Nil(t, missing.Result)
}

// -- Transactions --

func TestCreateTransaction_BalanceDeltas(t *testing.T) {
	writer := newTestWriter(t)

	perform(t, writer, &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: salaryID, Type: category.TypeIncome, Amount: dec("1000")})
	perform(t, writer, &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: foodID, Type: category.TypeExpense, Amount: dec("25.40")})

	assert.True(t, balance(t, writer, storage.DefaultAccountID).Equal(dec("974.60")))
}

func TestCreateTransaction_TypeFromCategory(t *testing.T) {
	writer := newTestWriter(t)
	action := &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: foodID, Amount: dec("5")}
	perform(t, writer, action)
	assert.Equal(t, category.TypeExpense, action.Result.Type)
}

func TestCreateTransaction_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		action *CreateTransaction
		err    error
	}{
		{"zero amount", &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: foodID, Amount: dec("0")}, ErrNonPositiveAmount},
		{"negative amount", &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: foodID, Amount: dec("-1")}, ErrNonPositiveAmount},
		{"missing account", &CreateTransaction{AccountID: "nope", CategoryID: foodID, Amount: dec("1")}, account.ErrNotFound},
		{"missing category", &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: "nope", Amount: dec("1")}, category.ErrNotFound},
		{"type mismatch", &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: foodID, Type: category.TypeIncome, Amount: dec("1")}, ErrCategoryTypeMismatch},
		{"invalid type", &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: foodID, Type: "BOTH", Amount: dec("1")}, category.ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := newTestWriter(t)
			err := tt.action.Perform(context.Background(), writer)
			assert.ErrorIs(t, err, tt.err)
			assert.False(t, writer.Dirty(), "nothing mutated")
			assert.Empty(t, writer.Transaction.List())
		})
	}
}

func TestDeleteTransaction_ReversesDelta(t *testing.T) {
	writer := newTestWriter(t)
	create := &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: foodID, Amount: dec("40")}
	perform(t, writer, create)

	del := &DeleteTransaction{ID: create.Result.ID}
	perform(t, writer, del)

	assert.True(t, del.Deleted)
	assert.True(t, balance(t, writer, storage.DefaultAccountID).IsZero())
	assert.Empty(t, writer.Transaction.List())
}

func TestDeleteTransaction_MissingIsNoop(t *testing.T) {
	writer := newTestWriter(t)
	del := &DeleteTransaction{ID: "nope"}
	perform(t, writer, del)

	assert.False(t, del.Deleted)
	assert.False(t, writer.Dirty())
}

// -- Category cascade --

func TestDeleteCategory_Cascade(t *testing.T) {
	writer := newTestWriter(t)

	side := &CreateCategory{Create: category.CategoryCreate{Name: "Side", Type: category.TypeExpense}}
	perform(t, writer, side)

	perform(t, writer, &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: salaryID, Amount: dec("500")})
	before := balance(t, writer, storage.DefaultAccountID)

	// Two expenses, then the category flips to INCOME and receives one income.
	perform(t, writer, &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: side.Result.ID, Amount: dec("30")})
	perform(t, writer, &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: side.Result.ID, Amount: dec("12.5")})
	income := category.TypeIncome
	perform(t, writer, &UpdateCategory{ID: side.Result.ID, Update: category.CategoryUpdate{Type: &income}})
	perform(t, writer, &CreateTransaction{AccountID: storage.DefaultAccountID, CategoryID: side.Result.ID, Amount: dec("80")})

	assert.True(t, balance(t, writer, storage.DefaultAccountID).Equal(before.Sub(dec("42.5")).Add(dec("80"))))

	del := &DeleteCategory{ID: side.Result.ID}
	perform(t, writer, del)

	assert.True(t, del.Deleted)
	assert.Equal(t, 3, del.RemovedTransactions)
	assert.True(t, balance(t, writer, storage.DefaultAccountID).Equal(before))
	assert.Nil(t, writer.Category.FindByID(side.Result.ID))

	remaining := writer.Transaction.List()
	require.Len(t, remaining, 1, "unrelated transaction untouched")
	assert.Equal(t, salaryID, remaining[0].CategoryID)
}

func TestDeleteCategory_MissingIsNoop(t *testing.T) {
	writer := newTestWriter(t)
	del := &DeleteCategory{ID: "nope"}
	perform(t, writer, del)

	assert.False(t, del.Deleted)
	assert.False(t, writer.Dirty())
}

func TestCreateCategory_Duplicate(t *testing.T) {
	writer := newTestWriter(t)
	err := (&CreateCategory{Create: category.CategoryCreate{Name: "food", Type: category.TypeExpense}}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, category.ErrDuplicate)

	perform(t, writer, &CreateCategory{Create: category.CategoryCreate{Name: "food", Type: category.TypeIncome}})
}

// -- Transfers --

func TestCreateTransfer(t *testing.T) {
	writer := newTestWriter(t)
	savings := &CreateAccount{Name: "Savings", Symbol: "S"}
	perform(t, writer, savings)

	action := &CreateTransfer{FromAccountID: storage.DefaultAccountID, ToAccountID: savings.Result.ID, Amount: dec("75"), Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	perform(t, writer, action)

	assert.True(t, balance(t, writer, storage.DefaultAccountID).Equal(dec("-75")))
	assert.True(t, balance(t, writer, savings.Result.ID).Equal(dec("75")))
	assert.Len(t, writer.Transfer.List(), 1)
	assert.Equal(t, writer.Now(), writer.Account.FindByID(savings.Result.ID).UpdatedAt)
}

func TestCreateTransfer_Rejections(t *testing.T) {
	writer := newTestWriter(t)

	err := (&CreateTransfer{FromAccountID: storage.DefaultAccountID, ToAccountID: storage.DefaultAccountID, Amount: dec("1")}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, transfer.ErrSameAccount)

	err = (&CreateTransfer{FromAccountID: storage.DefaultAccountID, ToAccountID: "nope", Amount: dec("1")}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, account.ErrNotFound)

	err = (&CreateTransfer{FromAccountID: "nope", ToAccountID: storage.DefaultAccountID, Amount: dec("1")}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, account.ErrNotFound)

	err = (&CreateTransfer{FromAccountID: "a", ToAccountID: "b", Amount: dec("0")}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	assert.False(t, writer.Dirty())
	assert.Empty(t, writer.Transfer.List())
}
