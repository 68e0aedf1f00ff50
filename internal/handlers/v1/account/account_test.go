package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-ledger/internal/service"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) ListAccounts(ctx context.Context) ([]account.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]account.Account)
	return accounts, args.Error(1)
}

func (m *mockAccountService) GetAccount(ctx context.Context, id string) (*account.Account, error) {
	args := m.Called(ctx, id)
	acc, _ := args.Get(0).(*account.Account)
	return acc, args.Error(1)
}

func (m *mockAccountService) CreateAccount(ctx context.Context, create account.AccountCreate) (*account.Account, error) {
	args := m.Called(ctx, create)
	acc, _ := args.Get(0).(*account.Account)
	return acc, args.Error(1)
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, id string, update account.AccountUpdate) (*account.Account, error) {
	args := m.Called(ctx, id, update)
	acc, _ := args.Get(0).(*account.Account)
	return acc, args.Error(1)
}

func (m *mockAccountService) GetTotalBalance(ctx context.Context) ([]service.CurrencyTotal, error) {
	args := m.Called(ctx)
	totals, _ := args.Get(0).([]service.CurrencyTotal)
	return totals, args.Error(1)
}

type registrar interface {
	Register(api huma.API)
}

func newTestAPI(t *testing.T, handlers ...registrar) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	for _, h := range handlers {
		h.Register(api)
	}
	return api
}

var created = time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)

func savings() *account.Account {
	return &account.Account{
		ID:             "acc-1",
		Name:           "Savings",
		Balance:        decimal.RequireFromString("250.75"),
		Currency:       "EUR",
		Symbol:         "S",
		Color:          "#00FF00",
		IncludeInTotal: true,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

// -- parseCreateAccountInput unit tests --

func TestParseCreateAccountInput_DefaultsBalance(t *testing.T) {
	create, err := parseCreateAccountInput(&CreateAccountInput{Body: CreateAccountBody{Name: "Cash", Symbol: "C"}})
	require.NoError(t, err)
	assert.True(t, create.Balance.IsZero())
	assert.Equal(t, "Cash", create.Name)
}

func TestParseCreateAccountInput_InvalidBalance(t *testing.T) {
	_, err := parseCreateAccountInput(&CreateAccountInput{Body: CreateAccountBody{Name: "Cash", Symbol: "C", Balance: "lots"}})
	assert.Error(t, err)
}

// -- HTTP tests --

func TestHTTP_ListAccounts(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything).Return([]account.Account{*savings()}, nil)

	resp := newTestAPI(t, NewListAccountsHandler(svc)).Get("/v1/account")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Accounts, 1)
	assert.Equal(t, Account{
		ID:             "acc-1",
		Name:           "Savings",
		Balance:        "250.75",
		Currency:       "EUR",
		Symbol:         "S",
		Color:          "#00FF00",
		IncludeInTotal: true,
		CreatedAt:      "2025-01-02T03:04:05Z",
		UpdatedAt:      "2025-01-02T03:04:05Z",
	}, body.Accounts[0])
	svc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_StorageError(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything).Return(nil, errors.New("disk gone"))

	resp := newTestAPI(t, NewListAccountsHandler(svc)).Get("/v1/account")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_GetAccount(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("GetAccount", mock.Anything, "acc-1").Return(savings(), nil)
	svc.On("GetAccount", mock.Anything, "missing").Return(nil, nil)
	api := newTestAPI(t, NewGetAccountHandler(svc))

	resp := api.Get("/v1/account/acc-1")
	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Savings", body.Name)

	resp = api.Get("/v1/account/missing")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateAccount_Success(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("CreateAccount", mock.Anything, mock.MatchedBy(func(c account.AccountCreate) bool {
		return c.Name == "Savings" &&
			c.Symbol == "S" &&
			c.Currency == "EUR" &&
			c.Balance.Equal(decimal.RequireFromString("250.75")) &&
			c.IncludeInTotal
	})).Return(savings(), nil)

	resp := newTestAPI(t, NewCreateAccountHandler(svc)).Post("/v1/account", CreateAccountBody{
		Name:           "Savings",
		Balance:        "250.75",
		Currency:       "EUR",
		Symbol:         "S",
		IncludeInTotal: true,
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "acc-1", body.ID)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"duplicate name", service.ErrDuplicateAccountName, http.StatusConflict},
		{"duplicate symbol", service.ErrDuplicateAccountSymbol, http.StatusConflict},
		{"unknown currency", service.ErrUnknownCurrency, http.StatusBadRequest},
		{"storage", errors.New("write failed"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockAccountService)
			svc.On("CreateAccount", mock.Anything, mock.Anything).Return(nil, tt.err)

			resp := newTestAPI(t, NewCreateAccountHandler(svc)).Post("/v1/account", CreateAccountBody{Name: "Savings", Symbol: "S"})

			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func TestHTTP_CreateAccount_InvalidBalance(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, NewCreateAccountHandler(svc)).Post("/v1/account", CreateAccountBody{Name: "Savings", Symbol: "S", Balance: "abc"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestHTTP_UpdateAccount(t *testing.T) {
	svc := new(mockAccountService)
	renamed := savings()
	renamed.Name = "Rainy Day"
	svc.On("UpdateAccount", mock.Anything, "acc-1", mock.MatchedBy(func(u account.AccountUpdate) bool {
		return u.Name != nil && *u.Name == "Rainy Day" && u.Symbol == nil && u.Currency == nil
	})).Return(renamed, nil)
	svc.On("UpdateAccount", mock.Anything, "missing", mock.Anything).Return(nil, nil)
	api := newTestAPI(t, NewUpdateAccountHandler(svc))

	resp := api.Patch("/v1/account/acc-1", map[string]any{"name": "Rainy Day"})
	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Rainy Day", body.Name)

	resp = api.Patch("/v1/account/missing", map[string]any{"name": "Rainy Day"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_TotalBalance(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("GetTotalBalance", mock.Anything).Return([]service.CurrencyTotal{
		{Currency: "EUR", Total: decimal.RequireFromString("40"), Accounts: 1},
		{Currency: "USD", Total: decimal.RequireFromString("100.25"), Accounts: 2},
	}, nil)

	resp := newTestAPI(t, NewTotalBalanceHandler(svc)).Get("/v1/account/total")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Totals []CurrencyTotal `json:"totals"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []CurrencyTotal{
		{Currency: "EUR", Total: "40", Accounts: 1},
		{Currency: "USD", Total: "100.25", Accounts: 2},
	}, body.Totals)
}
