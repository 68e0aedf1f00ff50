package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carson-networks/budget-ledger/internal/storage/account"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
	"github.com/carson-networks/budget-ledger/internal/storage/transfer"
)

var ErrWriterClosed = errors.New("storage: writer already committed or rolled back")

// Writer is a working copy of the document for one operation. All entity
// writers share one timestamp, so every record touched by the operation gets
// the same UpdatedAt.
type Writer struct {
	storage *Storage
	doc     *Document
	now     time.Time
	dirty   bool
	seeded  bool
	closed  bool

	Account     *account.Writer
	Category    *category.Writer
	Transaction *transaction.Writer
	Transfer    *transfer.Writer
}

func newWriter(s *Storage, doc *Document, now time.Time) *Writer {
	w := &Writer{
		storage: s,
		doc:     doc,
		now:     now,
	}
	w.seeded = seed(doc, now)

	w.Account = account.NewWriter(&doc.Accounts, now, s.NewID, w.MarkDirty)
	w.Category = category.NewWriter(&doc.Categories, now, s.NewID, w.MarkDirty)
	w.Transaction = transaction.NewWriter(&doc.Transactions, now, s.NewID, w.MarkDirty)
	w.Transfer = transfer.NewWriter(&doc.Transfers, now, s.NewID, w.MarkDirty)
	return w
}

func (w *Writer) Now() time.Time {
	return w.now
}

// Seeded reports whether the loaded document was empty and received the
// default account and categories. Seeding alone does not make the writer
// dirty.
func (w *Writer) Seeded() bool {
	return w.seeded
}

func (w *Writer) MarkDirty() {
	w.dirty = true
}

func (w *Writer) Dirty() bool {
	return w.dirty
}

// Commit writes the whole document back. A writer with no changes writes
// nothing, leaving the stored bytes untouched.
func (w *Writer) Commit(ctx context.Context) error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true

	if !w.dirty {
		return nil
	}

	data, err := w.doc.Encode()
	if err != nil {
		return err
	}
	if err := w.storage.blobs.Write(ctx, w.storage.key, string(data)); err != nil {
		return fmt.Errorf("storage: commit document: %w", err)
	}
	return nil
}

// Rollback discards the working copy.
func (w *Writer) Rollback() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true
	w.doc = nil
	return nil
}
