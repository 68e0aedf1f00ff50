package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
)

func TestCreateCategory_SameNameOtherType(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Category.CreateCategory(ctx, category.CategoryCreate{Name: "Food", Icon: "basket", Type: category.TypeIncome})
	require.NoError(t, err)
	assert.Equal(t, category.TypeIncome, created.Type)

	_, err = svc.Category.CreateCategory(ctx, category.CategoryCreate{Name: "food ", Type: category.TypeIncome})
	assert.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestCreateCategory_InvalidType(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Category.CreateCategory(context.Background(), category.CategoryCreate{Name: "Odd", Type: "SAVINGS"})
	assert.ErrorIs(t, err, ErrInvalidCategoryType)
}

func TestListCategoriesByType(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	expenses, err := svc.Category.ListCategoriesByType(ctx, category.TypeExpense)
	require.NoError(t, err)
	incomes, err := svc.Category.ListCategoriesByType(ctx, category.TypeIncome)
	require.NoError(t, err)

	assert.Len(t, expenses, 6)
	assert.Len(t, incomes, 5)
	for _, c := range expenses {
		assert.Equal(t, category.TypeExpense, c.Type)
	}
	assert.Equal(t, "Food", expenses[0].Name)
	assert.Equal(t, "Salary", incomes[0].Name)
}

func TestGetCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	got, err := svc.Category.GetCategory(ctx, seedCategoryID("Gift", category.TypeIncome))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "gift", got.Icon)
	assert.Equal(t, "#E17055", got.Color)

	got, err = svc.Category.GetCategory(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateCategory_RejectsCollision(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	name := "Transport"
	_, err := svc.Category.UpdateCategory(ctx, seedCategoryID("Food", category.TypeExpense), category.CategoryUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrDuplicateCategory)

	// Moving it to the other type frees the name.
	income := category.TypeIncome
	updated, err := svc.Category.UpdateCategory(ctx, seedCategoryID("Food", category.TypeExpense),
		category.CategoryUpdate{Name: &name, Type: &income})
	require.NoError(t, err)
	assert.Equal(t, "Transport", updated.Name)
	assert.Equal(t, category.TypeIncome, updated.Type)
}

func TestDeleteCategory_ReversesBalances(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	foodID := seedCategoryID("Food", category.TypeExpense)
	salaryID := seedCategoryID("Salary", category.TypeIncome)
	for _, amount := range []string{"12.30", "7.70"} {
		_, err := svc.Transaction.CreateTransaction(ctx, transaction.TransactionCreate{
			AccountID: storage.DefaultAccountID, CategoryID: foodID, Amount: dec(amount),
		})
		require.NoError(t, err)
	}
	salary, err := svc.Transaction.CreateTransaction(ctx, transaction.TransactionCreate{
		AccountID: storage.DefaultAccountID, CategoryID: salaryID, Amount: dec("1000"),
	})
	require.NoError(t, err)

	main, err := svc.Account.GetAccount(ctx, storage.DefaultAccountID)
	require.NoError(t, err)
	assert.True(t, main.Balance.Equal(dec("980")))

	removed, err := svc.Category.DeleteCategory(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	main, err = svc.Account.GetAccount(ctx, storage.DefaultAccountID)
	require.NoError(t, err)
	assert.True(t, main.Balance.Equal(dec("1000")))

	remaining, err := svc.Transaction.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, salary.ID, remaining[0].ID)

	got, err := svc.Category.GetCategory(ctx, foodID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListMonthlyExpenses(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rent := dec("1200")
	gym := dec("45.50")
	creates := []category.CategoryCreate{
		{Name: "Rent", Type: category.TypeExpense, IsMonthlyExpense: true, MonthlyAmount: &rent},
		{Name: "Gym", Type: category.TypeExpense, IsMonthlyExpense: true, MonthlyAmount: &gym},
		{Name: "Streaming", Type: category.TypeExpense, IsMonthlyExpense: true},
	}
	for _, create := range creates {
		_, err := svc.Category.CreateCategory(ctx, create)
		require.NoError(t, err)
	}

	monthly, err := svc.Category.ListMonthlyExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, monthly.Categories, 3)
	assert.Equal(t, "Rent", monthly.Categories[0].Name)
	assert.True(t, monthly.Total.Equal(dec("1245.50")))
}
