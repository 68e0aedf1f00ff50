package report

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/storage"
)

// Loader reads the ledger for export from a single document snapshot.
type Loader struct {
	Storage *storage.Storage
}

func NewLoader(s *storage.Storage) *Loader {
	return &Loader{Storage: s}
}

func (l *Loader) Load(ctx context.Context) (*Ledger, error) {
	reader, err := l.Storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	return &Ledger{
		Accounts:     reader.Accounts.List(),
		Categories:   reader.Categories.List(),
		Transactions: reader.Transactions.List(),
		Transfers:    reader.Transfers.List(),
	}, nil
}
