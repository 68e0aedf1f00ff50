package storage

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/storage/account"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

const (
	DefaultAccountID       = "default-account"
	DefaultAccountName     = "Main Account"
	DefaultAccountCurrency = "USD"
	DefaultAccountSymbol   = "$"
	DefaultAccountColor    = "#007AFF"
)

// SeedCategory is one entry of the first-run category set.
type SeedCategory struct {
	Name  string
	Icon  string
	Color string
	Type  category.Type
}

// SeedCategories is part of the on-disk initial state; keep order and values.
var SeedCategories = []SeedCategory{
	{Name: "Food", Icon: "restaurant", Color: "#FF6B6B", Type: category.TypeExpense},
	{Name: "Transport", Icon: "car", Color: "#4ECDC4", Type: category.TypeExpense},
	{Name: "Shopping", Icon: "shopping-bag", Color: "#FFD93D", Type: category.TypeExpense},
	{Name: "Bills", Icon: "receipt", Color: "#6C5CE7", Type: category.TypeExpense},
	{Name: "Entertainment", Icon: "film", Color: "#A29BFE", Type: category.TypeExpense},
	{Name: "Health", Icon: "medkit", Color: "#FD79A8", Type: category.TypeExpense},
	{Name: "Salary", Icon: "briefcase", Color: "#00B894", Type: category.TypeIncome},
	{Name: "Freelance", Icon: "laptop", Color: "#0984E3", Type: category.TypeIncome},
	{Name: "Investment", Icon: "trending-up", Color: "#FDCB6E", Type: category.TypeIncome},
	{Name: "Gift", Icon: "gift", Color: "#E17055", Type: category.TypeIncome},
	{Name: "Other Income", Icon: "cash", Color: "#636E72", Type: category.TypeIncome},
}

// SeedCategoryID is the fixed id of a seeded category, e.g.
// "default-income-other-income".
func SeedCategoryID(c SeedCategory) string {
	slug := strings.ReplaceAll(strings.ToLower(c.Name), " ", "-")
	return "default-" + strings.ToLower(string(c.Type)) + "-" + slug
}

// seed fills an empty document with the default account and categories.
// It does nothing once any account exists, and skips a default category
// whose name and type are already taken.
func seed(doc *Document, now time.Time) bool {
	if len(doc.Accounts) > 0 {
		return false
	}

	doc.Accounts = append(doc.Accounts, &account.Account{
		ID:             DefaultAccountID,
		Name:           DefaultAccountName,
		Balance:        decimal.Zero,
		Currency:       DefaultAccountCurrency,
		Symbol:         DefaultAccountSymbol,
		Color:          DefaultAccountColor,
		IncludeInTotal: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})

	categories := category.NewReader(&doc.Categories)
	for _, c := range SeedCategories {
		if categories.FindByNameAndType(c.Name, c.Type, "") != nil {
			continue
		}
		doc.Categories = append(doc.Categories, &category.Category{
			ID:        SeedCategoryID(c),
			Name:      c.Name,
			Icon:      c.Icon,
			Color:     c.Color,
			Type:      c.Type,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return true
}
