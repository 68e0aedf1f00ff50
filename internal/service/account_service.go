package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
)

// CurrencyTotal is the summed balance of the included accounts sharing one
// currency. Currencies are never converted into each other.
type CurrencyTotal struct {
	Currency string
	Total    decimal.Decimal
	Accounts int
}

// AccountService handles account business logic.
type AccountService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor actionProcessor) *AccountService {
	return &AccountService{storage: store, processor: processor}
}

// ListAccounts returns every account in creation order.
func (s *AccountService) ListAccounts(ctx context.Context) ([]account.Account, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	return reader.Accounts.List(), nil
}

// GetAccount retrieves an account by ID, or nil if there is none.
func (s *AccountService) GetAccount(ctx context.Context, id string) (*account.Account, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	return reader.Accounts.FindByID(id), nil
}

// CreateAccount creates a new account with create.Balance as its opening
// balance.
func (s *AccountService) CreateAccount(ctx context.Context, create account.AccountCreate) (*account.Account, error) {
	action := &actions.CreateAccount{
		Name:           create.Name,
		Balance:        create.Balance,
		Currency:       create.Currency,
		Symbol:         create.Symbol,
		Color:          create.Color,
		IncludeInTotal: create.IncludeInTotal,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// UpdateAccount applies update and returns the account, or nil if id does
// not exist.
func (s *AccountService) UpdateAccount(ctx context.Context, id string, update account.AccountUpdate) (*account.Account, error) {
	action := &actions.UpdateAccount{ID: id, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// GetTotalBalance sums the accounts flagged IncludeInTotal, per currency,
// ordered by currency code.
func (s *AccountService) GetTotalBalance(ctx context.Context) ([]CurrencyTotal, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	byCurrency := make(map[string]*CurrencyTotal)
	for _, a := range accounts {
		if !a.IncludeInTotal {
			continue
		}
		total, ok := byCurrency[a.Currency]
		if !ok {
			total = &CurrencyTotal{Currency: a.Currency, Total: decimal.Zero}
			byCurrency[a.Currency] = total
		}
		total.Total = total.Total.Add(a.Balance)
		total.Accounts++
	}

	result := make([]CurrencyTotal, 0, len(byCurrency))
	for _, total := range byCurrency {
		result = append(result, *total)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Currency < result[j].Currency })
	return result, nil
}
