package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/carson-networks/budget-ledger/internal/report"
	"github.com/carson-networks/budget-ledger/internal/service"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

type statsCmd struct {
	app      *App
	start    string
	end      string
	kind     string
	account  string
	currency string
	raw      bool
	width    int
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "summarize balances and spending per category" }
func (*statsCmd) Usage() string {
	return `ledgerctl stats [-s <start_date>] [-e <end_date>] [-type expense|income] [-account <account>] [-currency <code>] [-raw] [-w <width>]

  Prints account balances and the per-category totals for a period.
  The period defaults to the current month up to now. A plain end date
  includes the whole day.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start of the period. Defaults to the first day of the current month.")
	f.StringVar(&c.end, "e", "", "End of the period. Defaults to now.")
	f.StringVar(&c.kind, "type", string(category.TypeExpense), "Transaction type, expense or income.")
	f.StringVar(&c.account, "account", "", "Only count transactions of this account.")
	f.StringVar(&c.currency, "currency", "USD", "Currency used to print category totals.")
	f.BoolVar(&c.raw, "raw", false, "Print markdown without terminal styling.")
	f.IntVar(&c.width, "w", 100, "Word wrap width for styled output.")
}

// period resolves the flags into an inclusive range.
func (c *statsCmd) period() (time.Time, time.Time, error) {
	now := c.app.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := now

	if c.start != "" {
		s, err := parseDate(c.start)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = s
	}
	if c.end != "" {
		e, err := parseDate(c.end)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if len(c.end) == len(dateLayout) {
			e = e.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		end = e
	}
	return start, end, nil
}

func (c *statsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, end, err := c.period()
	if err != nil {
		return c.app.fail("%v", err)
	}
	if end.Before(start) {
		fmt.Fprintln(c.app.errOut(), "Error: the end date is before the start date.")
		return subcommands.ExitUsageError
	}
	kind, err := category.ParseType(c.kind)
	if err != nil {
		return c.app.fail("%v", err)
	}

	l, err := c.app.open()
	if err != nil {
		return c.app.fail("%v", err)
	}
	defer l.Close()

	query := service.StatsQuery{Start: start, End: end, Type: &kind}
	if c.account != "" {
		query.AccountID, err = resolveAccount(ctx, l.Service, c.account)
		if err != nil {
			return c.app.fail("%v", err)
		}
	}

	accounts, err := l.Service.Account.ListAccounts(ctx)
	if err != nil {
		return c.app.fail("listing accounts: %v", err)
	}
	totals, err := l.Service.Account.GetTotalBalance(ctx)
	if err != nil {
		return c.app.fail("computing totals: %v", err)
	}
	stats, err := l.Service.Stats.GetTransactionStats(ctx, query)
	if err != nil {
		return c.app.fail("computing stats: %v", err)
	}

	summary := &report.Summary{
		Start:    start,
		End:      end,
		Accounts: accounts,
		Totals:   totals,
		Stats:    stats,
		Currency: c.currency,
	}
	text := summary.Markdown()
	if !c.raw {
		text, err = summary.Render(c.width)
		if err != nil {
			return c.app.fail("%v", err)
		}
	}
	fmt.Fprint(c.app.out(), text)
	return subcommands.ExitSuccess
}
