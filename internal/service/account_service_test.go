package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
)

func TestCreateAccount_Success(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Account.CreateAccount(ctx, account.AccountCreate{
		Name:           "Savings",
		Balance:        dec("120.50"),
		Currency:       "eur",
		Symbol:         "€",
		Color:          "#00FF00",
		IncludeInTotal: true,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "EUR", created.Currency)
	assert.True(t, created.Balance.Equal(dec("120.50")))
	assert.Equal(t, testNow, created.CreatedAt)
	assert.Equal(t, testNow, created.UpdatedAt)

	got, err := svc.Account.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Savings", got.Name)
	assert.True(t, got.Balance.Equal(created.Balance))
}

func TestCreateAccount_DefaultsCurrency(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Account.CreateAccount(context.Background(), account.AccountCreate{Name: "Wallet", Symbol: "W"})
	require.NoError(t, err)
	assert.Equal(t, storage.DefaultAccountCurrency, created.Currency)
}

func TestGetAccount_Missing(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.Account.GetAccount(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateAccount_KeepsOwnNameAndSymbol(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	name := "MAIN ACCOUNT"
	symbol := storage.DefaultAccountSymbol
	updated, err := svc.Account.UpdateAccount(ctx, storage.DefaultAccountID, account.AccountUpdate{Name: &name, Symbol: &symbol})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "MAIN ACCOUNT", updated.Name)
}

func TestUpdateAccount_RejectsTakenSymbol(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	savings, err := svc.Account.CreateAccount(ctx, account.AccountCreate{Name: "Savings", Symbol: "S"})
	require.NoError(t, err)

	symbol := storage.DefaultAccountSymbol
	_, err = svc.Account.UpdateAccount(ctx, savings.ID, account.AccountUpdate{Symbol: &symbol})
	assert.ErrorIs(t, err, ErrDuplicateAccountSymbol)
}

func TestUpdateAccount_DoesNotTouchBalance(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	savings, err := svc.Account.CreateAccount(ctx, account.AccountCreate{Name: "Savings", Symbol: "S", Balance: dec("75")})
	require.NoError(t, err)

	color := "#123456"
	updated, err := svc.Account.UpdateAccount(ctx, savings.ID, account.AccountUpdate{Color: &color})
	require.NoError(t, err)
	assert.Equal(t, color, updated.Color)
	assert.True(t, updated.Balance.Equal(dec("75")))
}

func TestGetTotalBalance(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	creates := []account.AccountCreate{
		{Name: "Checking", Symbol: "C", Balance: dec("100.25"), Currency: "USD", IncludeInTotal: true},
		{Name: "Hidden", Symbol: "H", Balance: dec("999"), Currency: "USD", IncludeInTotal: false},
		{Name: "Euro", Symbol: "E", Balance: dec("40"), Currency: "EUR", IncludeInTotal: true},
	}
	for _, create := range creates {
		_, err := svc.Account.CreateAccount(ctx, create)
		require.NoError(t, err)
	}

	totals, err := svc.Account.GetTotalBalance(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, "EUR", totals[0].Currency)
	assert.True(t, totals[0].Total.Equal(dec("40")))
	assert.Equal(t, 1, totals[0].Accounts)

	// The seeded main account is included with a zero balance.
	assert.Equal(t, "USD", totals[1].Currency)
	assert.True(t, totals[1].Total.Equal(dec("100.25")))
	assert.Equal(t, 2, totals[1].Accounts)
}

func TestGetTotalBalance_OnlyExcluded(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	include := false
	_, err := svc.Account.UpdateAccount(ctx, storage.DefaultAccountID, account.AccountUpdate{IncludeInTotal: &include})
	require.NoError(t, err)

	totals, err := svc.Account.GetTotalBalance(ctx)
	require.NoError(t, err)
	assert.Empty(t, totals)
}
