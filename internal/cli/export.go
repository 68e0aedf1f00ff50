package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/carson-networks/budget-ledger/internal/report"
)

type exportCmd struct {
	app    *App
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the ledger to an xlsx workbook" }
func (*exportCmd) Usage() string {
	return `ledgerctl export [-o <file>]

  Writes accounts, categories, transactions and transfers to one
  spreadsheet, one sheet each.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to ledger-<today>.xlsx.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	output := c.output
	if output == "" {
		output = fmt.Sprintf("ledger-%s.xlsx", c.app.now().Format(dateLayout))
	}

	l, err := c.app.open()
	if err != nil {
		return c.app.fail("%v", err)
	}
	defer l.Close()

	data, err := report.NewLoader(l.Storage).Load(ctx)
	if err != nil {
		return c.app.fail("reading ledger: %v", err)
	}

	f, err := os.Create(output)
	if err != nil {
		return c.app.fail("creating %q: %v", output, err)
	}
	if err := report.WriteWorkbook(f, data); err != nil {
		f.Close()
		return c.app.fail("writing %q: %v", output, err)
	}
	if err := f.Close(); err != nil {
		return c.app.fail("closing %q: %v", output, err)
	}

	fmt.Fprintf(c.app.out(), "Exported %d transactions and %d transfers to %s\n", len(data.Transactions), len(data.Transfers), output)
	return subcommands.ExitSuccess
}
