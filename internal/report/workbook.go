package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/budget-ledger/internal/storage/account"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
	"github.com/carson-networks/budget-ledger/internal/storage/transfer"
)

const (
	SheetAccounts     = "Accounts"
	SheetCategories   = "Categories"
	SheetTransactions = "Transactions"
	SheetTransfers    = "Transfers"

	timeLayout = "2006-01-02 15:04:05"
)

// Ledger is the full content exported to a workbook.
type Ledger struct {
	Accounts     []account.Account
	Categories   []category.Category
	Transactions []transaction.Transaction
	Transfers    []transfer.Transfer
}

type sheet struct {
	name   string
	header []interface{}
	widths []float64
	rows   [][]interface{}
}

// WriteWorkbook writes the ledger as an xlsx workbook with one sheet per
// entity. Transactions and transfers carry the account and category names
// next to their ids.
func WriteWorkbook(w io.Writer, ledger *Ledger) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("report: header style: %w", err)
	}

	for i, s := range ledgerSheets(ledger) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return err
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return fmt.Errorf("report: sheet %s: %w", s.name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	if err := f.SetSheetRow(s.name, "A1", &s.header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(s.header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(s.name, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, width := range s.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.name, col, col, width); err != nil {
			return err
		}
	}

	for i := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &s.rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func ledgerSheets(ledger *Ledger) []sheet {
	accountNames := make(map[string]string, len(ledger.Accounts))
	for _, a := range ledger.Accounts {
		accountNames[a.ID] = a.Name
	}
	categoryNames := make(map[string]string, len(ledger.Categories))
	for _, c := range ledger.Categories {
		categoryNames[c.ID] = c.Name
	}

	accounts := sheet{
		name:   SheetAccounts,
		header: []interface{}{"ID", "Name", "Balance", "Currency", "Symbol", "Color", "Include In Total", "Created At"},
		widths: []float64{38, 20, 14, 10, 8, 10, 16, 20},
	}
	for _, a := range ledger.Accounts {
		accounts.rows = append(accounts.rows, []interface{}{
			a.ID, a.Name, a.Balance.InexactFloat64(), a.Currency, a.Symbol, a.Color, a.IncludeInTotal, formatTime(a.CreatedAt),
		})
	}

	categories := sheet{
		name:   SheetCategories,
		header: []interface{}{"ID", "Name", "Type", "Icon", "Color", "Monthly Expense", "Monthly Amount"},
		widths: []float64{38, 20, 10, 14, 10, 16, 16},
	}
	for _, c := range ledger.Categories {
		var monthly interface{}
		if c.MonthlyAmount != nil {
			monthly = c.MonthlyAmount.InexactFloat64()
		}
		categories.rows = append(categories.rows, []interface{}{
			c.ID, c.Name, string(c.Type), c.Icon, c.Color, c.IsMonthlyExpense, monthly,
		})
	}

	transactions := sheet{
		name:   SheetTransactions,
		header: []interface{}{"ID", "Date", "Type", "Amount", "Account", "Category", "Note"},
		widths: []float64{38, 20, 10, 14, 20, 20, 30},
	}
	for _, t := range ledger.Transactions {
		transactions.rows = append(transactions.rows, []interface{}{
			t.ID, formatTime(t.Date), string(t.Type), t.Amount.InexactFloat64(),
			nameOr(accountNames, t.AccountID), nameOr(categoryNames, t.CategoryID), t.Note,
		})
	}

	transfers := sheet{
		name:   SheetTransfers,
		header: []interface{}{"ID", "Date", "Amount", "From", "To", "Note"},
		widths: []float64{38, 20, 14, 20, 20, 30},
	}
	for _, t := range ledger.Transfers {
		transfers.rows = append(transfers.rows, []interface{}{
			t.ID, formatTime(t.Date), t.Amount.InexactFloat64(),
			nameOr(accountNames, t.FromAccountID), nameOr(accountNames, t.ToAccountID), t.Note,
		})
	}

	return []sheet{accounts, categories, transactions, transfers}
}

func nameOr(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
