package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type initCmd struct {
	app *App
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "store the default account and categories" }
func (*initCmd) Usage() string {
	return `ledgerctl init

  Writes the default account and categories to an empty ledger.
  Running it on a ledger that already has data changes nothing.
`
}

func (*initCmd) SetFlags(*flag.FlagSet) {}

func (c *initCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := c.app.open()
	if err != nil {
		return c.app.fail("%v", err)
	}
	defer l.Close()

	seeded, err := l.Service.Initialize(ctx)
	if err != nil {
		return c.app.fail("initializing ledger: %v", err)
	}
	if seeded {
		fmt.Fprintln(c.app.out(), "Ledger initialized with the default account and categories.")
	} else {
		fmt.Fprintln(c.app.out(), "Ledger already initialized.")
	}
	return subcommands.ExitSuccess
}
