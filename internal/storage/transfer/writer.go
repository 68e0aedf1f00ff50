package transfer

import "time"

type Writer struct {
	Reader
	now     time.Time
	newID   func() string
	changed func()
}

func NewWriter(transfers *[]*Transfer, now time.Time, newID func() string, changed func()) *Writer {
	return &Writer{
		Reader:  Reader{transfers: transfers},
		now:     now,
		newID:   newID,
		changed: changed,
	}
}

// Insert appends the transfer record. Moving the balances is the caller's job.
func (w *Writer) Insert(create *TransferCreate) (*Transfer, error) {
	if create.FromAccountID == create.ToAccountID {
		return nil, ErrSameAccount
	}

	date := create.Date
	if date.IsZero() {
		date = w.now
	}

	row := &Transfer{
		ID:            w.newID(),
		FromAccountID: create.FromAccountID,
		ToAccountID:   create.ToAccountID,
		Amount:        create.Amount,
		Date:          date.UTC().Truncate(time.Millisecond),
		Note:          create.Note,
		CreatedAt:     w.now,
		UpdatedAt:     w.now,
	}
	*w.transfers = append(*w.transfers, row)
	w.changed()

	clone := *row
	return &clone, nil
}
