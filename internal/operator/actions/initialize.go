package actions

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/storage"
)

// Initialize persists the default account and categories when the stored
// document has no accounts yet. Running it again changes nothing.
type Initialize struct {
	Seeded bool
}

func (i *Initialize) ActionName() string { return "Initialize" }

func (i *Initialize) Perform(_ context.Context, writer *storage.Writer) error {
	i.Seeded = writer.Seeded()
	if i.Seeded {
		writer.MarkDirty()
	}
	return nil
}
