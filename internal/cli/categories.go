package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/carson-networks/budget-ledger/internal/report"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

type categoriesCmd struct {
	app   *App
	kind  string
	raw   bool
	width int
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list categories" }
func (*categoriesCmd) Usage() string {
	return `ledgerctl categories [-type expense|income] [-raw] [-w <width>]

  Lists categories with the ids accepted by add-transaction.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "", "Only list categories of this type.")
	f.BoolVar(&c.raw, "raw", false, "Print markdown without terminal styling.")
	f.IntVar(&c.width, "w", 100, "Word wrap width for styled output.")
}

func (c *categoriesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var kind category.Type
	if c.kind != "" {
		t, err := category.ParseType(c.kind)
		if err != nil {
			return c.app.fail("%v", err)
		}
		kind = t
	}

	l, err := c.app.open()
	if err != nil {
		return c.app.fail("%v", err)
	}
	defer l.Close()

	var categories []category.Category
	if kind != "" {
		categories, err = l.Service.Category.ListCategoriesByType(ctx, kind)
	} else {
		categories, err = l.Service.Category.ListCategories(ctx)
	}
	if err != nil {
		return c.app.fail("listing categories: %v", err)
	}

	if err := c.app.printMarkdown(report.CategoriesMarkdown(categories), c.raw, c.width); err != nil {
		return c.app.fail("%v", err)
	}
	return subcommands.ExitSuccess
}
