package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
)

type addTransactionCmd struct {
	app      *App
	account  string
	category string
	kind     string
	amount   string
	date     string
	note     string
}

func (*addTransactionCmd) Name() string     { return "add-transaction" }
func (*addTransactionCmd) Synopsis() string { return "record an expense or an income" }
func (*addTransactionCmd) Usage() string {
	return `ledgerctl add-transaction -c <category> -a <amount> [-type expense|income] [-account <account>] [-d <date>] [-note <text>]

  Records a transaction and moves the account balance by its amount.
  Accounts match by id, name or symbol; categories by id or name.
`
}

func (c *addTransactionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", storage.DefaultAccountID, "Account the money moves in or out of.")
	f.StringVar(&c.category, "c", "", "Category of the transaction.")
	f.StringVar(&c.kind, "type", string(category.TypeExpense), "Transaction type, expense or income.")
	f.StringVar(&c.amount, "a", "", "Positive amount.")
	f.StringVar(&c.date, "d", "", "Date, YYYY-MM-DD or RFC3339. Defaults to now.")
	f.StringVar(&c.note, "note", "", "Free text note.")
}

func (c *addTransactionCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" || c.amount == "" {
		fmt.Fprintln(c.app.errOut(), "Error: -c and -a are required.")
		return subcommands.ExitUsageError
	}
	kind, err := category.ParseType(c.kind)
	if err != nil {
		return c.app.fail("%v", err)
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		return c.app.fail("%v", err)
	}
	date, err := parseDate(c.date)
	if err != nil {
		return c.app.fail("%v", err)
	}

	l, err := c.app.open()
	if err != nil {
		return c.app.fail("%v", err)
	}
	defer l.Close()

	accountID, err := resolveAccount(ctx, l.Service, c.account)
	if err != nil {
		return c.app.fail("%v", err)
	}
	categoryID, err := resolveCategory(ctx, l.Service, c.category, kind)
	if err != nil {
		return c.app.fail("%v", err)
	}

	created, err := l.Service.Transaction.CreateTransaction(ctx, transaction.TransactionCreate{
		AccountID:  accountID,
		CategoryID: categoryID,
		Type:       kind,
		Amount:     amount,
		Date:       date,
		Note:       c.note,
	})
	if err != nil {
		return c.app.fail("recording transaction: %v", err)
	}
	fmt.Fprintf(c.app.out(), "Recorded %s of %s on %s (%s)\n",
		strings.ToLower(string(created.Type)), created.Amount.String(), created.Date.Format(dateLayout), created.ID)
	return subcommands.ExitSuccess
}
