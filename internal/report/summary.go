package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/carson-networks/budget-ledger/internal/service"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

const dateLayout = "2006-01-02"

// Summary is a printable overview of balances and category totals for one
// period.
type Summary struct {
	Start    time.Time
	End      time.Time
	Accounts []account.Account
	Totals   []service.CurrencyTotal
	Stats    []service.CategoryStat
	// Currency formats the category totals, which are not tied to one account.
	Currency string
}

// Markdown renders the summary as a markdown document.
func (s *Summary) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Ledger summary %s to %s\n\n", s.Start.Format(dateLayout), s.End.Format(dateLayout))

	b.WriteString("## Accounts\n\n")
	writeAccounts(&b, s.Accounts, s.Totals)

	b.WriteString("## Categories\n\n")
	if len(s.Stats) == 0 {
		b.WriteString("_No transactions in this period._\n")
		return b.String()
	}
	b.WriteString("| Category | Transactions | Total |\n|:---|---:|---:|\n")
	for _, stat := range s.Stats {
		name := stat.Name
		if name == "" {
			name = stat.CategoryID
		}
		fmt.Fprintf(&b, "| %s | %d | %s |\n", escape(name), stat.TransactionCount, FormatAmount(stat.TotalAmount, s.Currency))
	}
	return b.String()
}

// Render returns the markdown styled for a terminal of the given width.
func (s *Summary) Render(width int) (string, error) {
	return RenderMarkdown(s.Markdown(), width)
}

// AccountsMarkdown lists accounts with their balances followed by the
// per-currency totals.
func AccountsMarkdown(accounts []account.Account, totals []service.CurrencyTotal) string {
	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	writeAccounts(&b, accounts, totals)
	return b.String()
}

// CategoriesMarkdown lists categories with their ids, which the CLI accepts
// wherever a category is expected.
func CategoriesMarkdown(categories []category.Category) string {
	var b strings.Builder
	b.WriteString("# Categories\n\n")
	if len(categories) == 0 {
		b.WriteString("_No categories._\n")
		return b.String()
	}
	b.WriteString("| Category | Type | Icon | Monthly | ID |\n|:---|:---|:---|---:|:---|\n")
	for _, c := range categories {
		monthly := ""
		if c.IsMonthlyExpense && c.MonthlyAmount != nil {
			monthly = c.MonthlyAmount.StringFixed(2)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | `%s` |\n", escape(c.Name), c.Type, c.Icon, monthly, c.ID)
	}
	return b.String()
}

// RenderMarkdown styles markdown for a terminal of the given width.
func RenderMarkdown(markdown string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("report: create renderer: %w", err)
	}
	return renderer.Render(markdown)
}

func writeAccounts(b *strings.Builder, accounts []account.Account, totals []service.CurrencyTotal) {
	if len(accounts) == 0 {
		b.WriteString("_No accounts._\n\n")
	} else {
		b.WriteString("| Account | Balance | In total |\n|:---|---:|:---:|\n")
		for _, a := range accounts {
			included := ""
			if a.IncludeInTotal {
				included = "yes"
			}
			fmt.Fprintf(b, "| %s %s | %s | %s |\n", a.Symbol, escape(a.Name), FormatAmount(a.Balance, a.Currency), included)
		}
		b.WriteString("\n")
	}

	for _, total := range totals {
		fmt.Fprintf(b, "**Total %s:** %s\n\n", total.Currency, FormatAmount(total.Total, total.Currency))
	}
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
