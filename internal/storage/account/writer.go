package account

import (
	"time"

	"github.com/shopspring/decimal"
)

type Writer struct {
	Reader
	now     time.Time
	newID   func() string
	changed func()
}

func NewWriter(accounts *[]*Account, now time.Time, newID func() string, changed func()) *Writer {
	return &Writer{
		Reader:  Reader{accounts: accounts},
		now:     now,
		newID:   newID,
		changed: changed,
	}
}

func (w *Writer) validateUnique(name, symbol, excludeID string) error {
	if w.FindByName(name, excludeID) != nil {
		return ErrDuplicateName
	}
	if w.FindBySymbol(symbol, excludeID) != nil {
		return ErrDuplicateSymbol
	}
	return nil
}

func (w *Writer) Insert(create *AccountCreate) (*Account, error) {
	if err := w.validateUnique(create.Name, create.Symbol, ""); err != nil {
		return nil, err
	}

	row := &Account{
		ID:             w.newID(),
		Name:           create.Name,
		Balance:        create.Balance,
		Currency:       create.Currency,
		Symbol:         create.Symbol,
		Color:          create.Color,
		IncludeInTotal: create.IncludeInTotal,
		CreatedAt:      w.now,
		UpdatedAt:      w.now,
	}
	*w.accounts = append(*w.accounts, row)
	w.changed()

	clone := *row
	return &clone, nil
}

// Update merges update into the account after re-validating the candidate
// name and symbol against every other account. A missing id returns nil, nil.
func (w *Writer) Update(id string, update *AccountUpdate) (*Account, error) {
	row := w.find(id)
	if row == nil {
		return nil, nil
	}

	name, symbol := row.Name, row.Symbol
	if update.Name != nil {
		name = *update.Name
	}
	if update.Symbol != nil {
		symbol = *update.Symbol
	}
	if err := w.validateUnique(name, symbol, id); err != nil {
		return nil, err
	}

	row.Name = name
	row.Symbol = symbol
	if update.Currency != nil {
		row.Currency = *update.Currency
	}
	if update.Color != nil {
		row.Color = *update.Color
	}
	if update.IncludeInTotal != nil {
		row.IncludeInTotal = *update.IncludeInTotal
	}
	row.UpdatedAt = w.now
	w.changed()

	clone := *row
	return &clone, nil
}

// ApplyDelta adds delta to the account balance and refreshes UpdatedAt.
func (w *Writer) ApplyDelta(id string, delta decimal.Decimal) error {
	row := w.find(id)
	if row == nil {
		return ErrNotFound
	}
	row.Balance = row.Balance.Add(delta)
	row.UpdatedAt = w.now
	w.changed()
	return nil
}

