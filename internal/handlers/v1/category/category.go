package category

import (
	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

// Category is the API response model for a category.
type Category struct {
	ID               string `json:"id" doc:"Category ID"`
	Name             string `json:"name" doc:"Category name"`
	Icon             string `json:"icon" doc:"Icon key"`
	Color            string `json:"color" doc:"Display color"`
	Type             string `json:"type" enum:"EXPENSE,INCOME" doc:"Category type"`
	IsMonthlyExpense bool   `json:"isMonthlyExpense" doc:"Whether this is a recurring monthly expense"`
	MonthlyAmount    string `json:"monthlyAmount,omitempty" doc:"Planned monthly amount"`
	CreatedAt        string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt        string `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromStorage(c *category.Category) Category {
	out := Category{
		ID:               c.ID,
		Name:             c.Name,
		Icon:             c.Icon,
		Color:            c.Color,
		Type:             string(c.Type),
		IsMonthlyExpense: c.IsMonthlyExpense,
		CreatedAt:        handlerutil.FormatTime(c.CreatedAt),
		UpdatedAt:        handlerutil.FormatTime(c.UpdatedAt),
	}
	if c.MonthlyAmount != nil {
		out.MonthlyAmount = c.MonthlyAmount.String()
	}
	return out
}

func fromStorageList(categories []category.Category) []Category {
	out := make([]Category, len(categories))
	for i := range categories {
		out[i] = fromStorage(&categories[i])
	}
	return out
}
