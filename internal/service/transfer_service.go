package service

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/transfer"
)

// TransferService handles transfers between accounts.
type TransferService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewTransferService creates a new TransferService.
func NewTransferService(store *storage.Storage, processor actionProcessor) *TransferService {
	return &TransferService{storage: store, processor: processor}
}

// CreateTransfer records the transfer and moves both balances in one write.
func (s *TransferService) CreateTransfer(ctx context.Context, create transfer.TransferCreate) (*transfer.Transfer, error) {
	action := &actions.CreateTransfer{
		FromAccountID: create.FromAccountID,
		ToAccountID:   create.ToAccountID,
		Amount:        create.Amount,
		Date:          create.Date,
		Note:          create.Note,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

func (s *TransferService) ListTransfers(ctx context.Context) ([]transfer.Transfer, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	return reader.Transfers.List(), nil
}

// ListTransfersByAccount returns transfers in or out of accountID.
func (s *TransferService) ListTransfersByAccount(ctx context.Context, accountID string) ([]transfer.Transfer, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	return reader.Transfers.ListByAccount(accountID), nil
}
