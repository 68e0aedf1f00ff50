package category

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrDuplicate is returned when another category already has the same
	// name (case-insensitive) and type.
	ErrDuplicate   = errors.New("category with this name and type already exists")
	ErrNotFound    = errors.New("category not found")
	ErrInvalidType = errors.New("category type must be EXPENSE or INCOME")
)

// Type is shared by categories and the transactions filed under them.
type Type string

const (
	TypeExpense Type = "EXPENSE"
	TypeIncome  Type = "INCOME"
)

func (t Type) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// ParseType accepts either case.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// Category represents a category record.
type Category struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Icon             string           `json:"icon"`
	Color            string           `json:"color"`
	Type             Type             `json:"type"`
	IsMonthlyExpense bool             `json:"isMonthlyExpense"`
	MonthlyAmount    *decimal.Decimal `json:"monthlyAmount,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// Clone returns a copy that shares no pointers with c.
func (c *Category) Clone() *Category {
	clone := *c
	if c.MonthlyAmount != nil {
		amount := *c.MonthlyAmount
		clone.MonthlyAmount = &amount
	}
	return &clone
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Name             string
	Icon             string
	Color            string
	Type             Type
	IsMonthlyExpense bool
	MonthlyAmount    *decimal.Decimal
}

// CategoryUpdate holds the fields to change; nil fields are left as they are.
type CategoryUpdate struct {
	Name             *string
	Icon             *string
	Color            *string
	Type             *Type
	IsMonthlyExpense *bool
	MonthlyAmount    *decimal.Decimal
}

// sameName is the uniqueness comparison for category names.
func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
