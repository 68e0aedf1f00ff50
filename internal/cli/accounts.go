package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/carson-networks/budget-ledger/internal/report"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
)

type accountsCmd struct {
	app   *App
	raw   bool
	width int
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts, balances and totals" }
func (*accountsCmd) Usage() string {
	return `ledgerctl accounts [-raw] [-w <width>]

  Lists every account with its balance, followed by the total of the
  accounts included in totals, per currency.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print markdown without terminal styling.")
	f.IntVar(&c.width, "w", 100, "Word wrap width for styled output.")
}

func (c *accountsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := c.app.open()
	if err != nil {
		return c.app.fail("%v", err)
	}
	defer l.Close()

	accounts, err := l.Service.Account.ListAccounts(ctx)
	if err != nil {
		return c.app.fail("listing accounts: %v", err)
	}
	totals, err := l.Service.Account.GetTotalBalance(ctx)
	if err != nil {
		return c.app.fail("computing totals: %v", err)
	}

	if err := c.app.printMarkdown(report.AccountsMarkdown(accounts, totals), c.raw, c.width); err != nil {
		return c.app.fail("%v", err)
	}
	return subcommands.ExitSuccess
}

type addAccountCmd struct {
	app      *App
	name     string
	balance  string
	currency string
	symbol   string
	color    string
	exclude  bool
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create an account" }
func (*addAccountCmd) Usage() string {
	return `ledgerctl add-account -name <name> -symbol <symbol> [-balance <amount>] [-currency <code>] [-color <hex>] [-exclude]

  Creates an account. Names and symbols must be unique.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.balance, "balance", "0", "Opening balance.")
	f.StringVar(&c.currency, "currency", "USD", "ISO 4217 currency code.")
	f.StringVar(&c.symbol, "symbol", "", "Short symbol shown next to the name.")
	f.StringVar(&c.color, "color", "#007AFF", "Display color.")
	f.BoolVar(&c.exclude, "exclude", false, "Leave the account out of totals.")
}

func (c *addAccountCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.symbol == "" {
		fmt.Fprintln(c.app.errOut(), "Error: -name and -symbol are required.")
		return subcommands.ExitUsageError
	}
	balance, err := parseAmount(c.balance)
	if err != nil {
		return c.app.fail("%v", err)
	}

	l, err := c.app.open()
	if err != nil {
		return c.app.fail("%v", err)
	}
	defer l.Close()

	created, err := l.Service.Account.CreateAccount(ctx, account.AccountCreate{
		Name:           c.name,
		Balance:        balance,
		Currency:       c.currency,
		Symbol:         c.symbol,
		Color:          c.color,
		IncludeInTotal: !c.exclude,
	})
	if err != nil {
		return c.app.fail("creating account: %v", err)
	}
	fmt.Fprintf(c.app.out(), "Created account %s (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}
