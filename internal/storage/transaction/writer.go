package transaction

import (
	"slices"
	"time"
)

type Writer struct {
	Reader
	now     time.Time
	newID   func() string
	changed func()
}

func NewWriter(transactions *[]*Transaction, now time.Time, newID func() string, changed func()) *Writer {
	return &Writer{
		Reader:  Reader{transactions: transactions},
		now:     now,
		newID:   newID,
		changed: changed,
	}
}

// Insert appends the transaction. Cross-entity checks and the balance update
// belong to the caller.
func (w *Writer) Insert(create *TransactionCreate) *Transaction {
	date := create.Date
	if date.IsZero() {
		date = w.now
	}

	row := &Transaction{
		ID:         w.newID(),
		AccountID:  create.AccountID,
		CategoryID: create.CategoryID,
		Type:       create.Type,
		Amount:     create.Amount,
		Date:       date.UTC().Truncate(time.Millisecond),
		Note:       create.Note,
		CreatedAt:  w.now,
		UpdatedAt:  w.now,
	}
	*w.transactions = append(*w.transactions, row)
	w.changed()

	clone := *row
	return &clone
}

// Delete removes the transaction and returns it, or nil if it did not exist.
func (w *Writer) Delete(id string) *Transaction {
	removed := w.deleteWhere(func(t *Transaction) bool { return t.ID == id })
	if len(removed) == 0 {
		return nil
	}
	return &removed[0]
}

// DeleteByCategory removes and returns every transaction filed under
// categoryID.
func (w *Writer) DeleteByCategory(categoryID string) []Transaction {
	return w.deleteWhere(func(t *Transaction) bool { return t.CategoryID == categoryID })
}

func (w *Writer) deleteWhere(match func(*Transaction) bool) []Transaction {
	var removed []Transaction
	*w.transactions = slices.DeleteFunc(*w.transactions, func(t *Transaction) bool {
		if match(t) {
			removed = append(removed, *t)
			return true
		}
		return false
	})
	if len(removed) > 0 {
		w.changed()
	}
	return removed
}
