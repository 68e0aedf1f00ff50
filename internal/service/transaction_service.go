package service

import (
	"context"
	"time"

	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor actionProcessor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

func (s *TransactionService) reader(ctx context.Context) (*transaction.Reader, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	return reader.Transactions, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context) ([]transaction.Transaction, error) {
	reader, err := s.reader(ctx)
	if err != nil {
		return nil, err
	}
	return reader.List(), nil
}

// ListTransactionsByDateRange returns transactions dated within [start, end].
func (s *TransactionService) ListTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]transaction.Transaction, error) {
	reader, err := s.reader(ctx)
	if err != nil {
		return nil, err
	}
	return reader.ListByDateRange(start, end), nil
}

func (s *TransactionService) ListTransactionsByCategory(ctx context.Context, categoryID string) ([]transaction.Transaction, error) {
	reader, err := s.reader(ctx)
	if err != nil {
		return nil, err
	}
	return reader.ListByCategory(categoryID), nil
}

func (s *TransactionService) ListTransactionsByAccount(ctx context.Context, accountID string) ([]transaction.Transaction, error) {
	reader, err := s.reader(ctx)
	if err != nil {
		return nil, err
	}
	return reader.ListByAccount(accountID), nil
}

// FilterTransactions combines the date, type, account and category filters.
func (s *TransactionService) FilterTransactions(ctx context.Context, filter transaction.TransactionFilter) ([]transaction.Transaction, error) {
	reader, err := s.reader(ctx)
	if err != nil {
		return nil, err
	}
	return reader.Filter(&filter), nil
}

// GetTransaction retrieves a transaction by ID, or nil if there is none.
func (s *TransactionService) GetTransaction(ctx context.Context, id string) (*transaction.Transaction, error) {
	reader, err := s.reader(ctx)
	if err != nil {
		return nil, err
	}
	return reader.FindByID(id), nil
}

// CreateTransaction records the transaction and applies it to the account
// balance.
func (s *TransactionService) CreateTransaction(ctx context.Context, create transaction.TransactionCreate) (*transaction.Transaction, error) {
	action := &actions.CreateTransaction{
		AccountID:  create.AccountID,
		CategoryID: create.CategoryID,
		Type:       create.Type,
		Amount:     create.Amount,
		Date:       create.Date,
		Note:       create.Note,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// DeleteTransaction removes the transaction and reverses its balance effect.
// It reports whether anything was deleted; a missing id is not an error.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	action := &actions.DeleteTransaction{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return false, err
	}
	return action.Deleted, nil
}
