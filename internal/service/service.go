package service

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

// actionProcessor runs a mutation through the single-writer queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services. Reads go straight to storage;
// every mutation is an action processed by the operator.
type Service struct {
	Account     *AccountService
	Category    *CategoryService
	Transaction *TransactionService
	Transfer    *TransferService
	Stats       *StatsService

	processor actionProcessor
}

// NewService creates a new Service with the given storage and operator.
func NewService(store *storage.Storage, processor actionProcessor) *Service {
	return &Service{
		Account:     NewAccountService(store, processor),
		Category:    NewCategoryService(store, processor),
		Transaction: NewTransactionService(store, processor),
		Transfer:    NewTransferService(store, processor),
		Stats:       NewStatsService(store),
		processor:   processor,
	}
}

// Initialize persists the default account and categories on first run and
// reports whether it did. Calling it again is harmless.
func (s *Service) Initialize(ctx context.Context) (bool, error) {
	action := &actions.Initialize{}
	if err := s.processor.Process(ctx, action); err != nil {
		return false, err
	}
	return action.Seeded, nil
}
