package category

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

func NewWriter(categories *[]*Category, now time.Time, newID func() string, changed func()) *Writer {
	return &Writer{
		Reader:  Reader{categories: categories},
		now:     now,
		newID:   newID,
		changed: changed,
	}
}

// Insert validates the (name, type) pair and appends a new category.
func (w *Writer) Insert(create *CategoryCreate) (*Category, error) {
	if !create.Type.Valid() {
		return nil, ErrInvalidType
	}
	if w.FindByNameAndType(create.Name, create.Type, "") != nil {
		return nil, ErrDuplicate
	}

	row := &Category{
		ID:               w.newID(),
		Name:             create.Name,
		Icon:             create.Icon,
		Color:            create.Color,
		Type:             create.Type,
		IsMonthlyExpense: create.IsMonthlyExpense,
		MonthlyAmount:    create.MonthlyAmount,
		CreatedAt:        w.now,
		UpdatedAt:        w.now,
	}
	*w.categories = append(*w.categories, row)
	w.changed()
	return row.Clone(), nil
}

// Update merges update into the category. Uniqueness is checked against the
// name and type the category would have afterwards. A missing id returns
// nil, nil.
func (w *Writer) Update(id string, update *CategoryUpdate) (*Category, error) {
	row := w.find(id)
	if row == nil {
		return nil, nil
	}

	name, t := row.Name, row.Type
	if update.Name != nil {
		name = *update.Name
	}
	if update.Type != nil {
		if !update.Type.Valid() {
			return nil, ErrInvalidType
		}
		t = *update.Type
	}
	if w.FindByNameAndType(name, t, id) != nil {
		return nil, ErrDuplicate
	}

	row.Name = name
	row.Type = t
	if update.Icon != nil {
		row.Icon = *update.Icon
	}
	if update.Color != nil {
		row.Color = *update.Color
	}
	if update.IsMonthlyExpense != nil {
		row.IsMonthlyExpense = *update.IsMonthlyExpense
	}
	if update.MonthlyAmount != nil {
		amount := *update.MonthlyAmount
		row.MonthlyAmount = &amount
	}
	row.UpdatedAt = w.now
	w.changed()
	return row.Clone(), nil
}

// Delete removes the category and reports whether it existed.
func (w *Writer) Delete(id string) bool {
	before := len(*w.categories)
	*w.categories = slices.DeleteFunc(*w.categories, func(c *Category) bool {
		return c.ID == id
	})
	if len(*w.categories) == before {
		return false
	}
	w.changed()
	return true
}

