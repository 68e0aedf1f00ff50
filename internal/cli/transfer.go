package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/carson-networks/budget-ledger/internal/storage/transfer"
)

type transferCmd struct {
	app    *App
	from   string
	to     string
	amount string
	date   string
	note   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `ledgerctl transfer -from <account> -to <account> -a <amount> [-d <date>] [-note <text>]

  Moves an amount from one account to another. Accounts match by id,
  name or symbol.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Account the money leaves.")
	f.StringVar(&c.to, "to", "", "Account the money enters.")
	f.StringVar(&c.amount, "a", "", "Positive amount.")
	f.StringVar(&c.date, "d", "", "Date, YYYY-MM-DD or RFC3339. Defaults to now.")
	f.StringVar(&c.note, "note", "", "Free text note.")
}

func (c *transferCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" || c.amount == "" {
		fmt.Fprintln(c.app.errOut(), "Error: -from, -to and -a are required.")
		return subcommands.ExitUsageError
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

	fromID, err := resolveAccount(ctx, l.Service, c.from)
	if err != nil {
		return c.app.fail("%v", err)
	}
	toID, err := resolveAccount(ctx, l.Service, c.to)
	if err != nil {
		return c.app.fail("%v", err)
	}

	created, err := l.Service.Transfer.CreateTransfer(ctx, transfer.TransferCreate{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
		Date:          date,
		Note:          c.note,
	})
	if err != nil {
		return c.app.fail("recording transfer: %v", err)
	}
	fmt.Fprintf(c.app.out(), "Transferred %s from %s to %s (%s)\n", created.Amount.String(), c.from, c.to, created.ID)
	return subcommands.ExitSuccess
}
