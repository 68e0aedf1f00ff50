// Package cli implements ledgerctl, the command line client that works on the
// ledger document directly, without going through the HTTP API.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/blobstore"
	"github.com/carson-networks/budget-ledger/internal/config"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/operator"
	"github.com/carson-networks/budget-ledger/internal/report"
	"github.com/carson-networks/budget-ledger/internal/service"
	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
)

const dateLayout = "2006-01-02"

// App carries what every command shares. The zero value writes to the
// process stdout/stderr and reads the configuration from the environment.
type App struct {
	Out        io.Writer
	Err        io.Writer
	LoadConfig func() (*config.Config, error)
	Now        func() time.Time
}

// Register adds every ledgerctl command to c.
func (a *App) Register(c *subcommands.Commander) {
	c.Register(&initCmd{app: a}, "ledger")
	c.Register(&exportCmd{app: a}, "ledger")

	c.Register(&accountsCmd{app: a}, "accounts")
	c.Register(&addAccountCmd{app: a}, "accounts")
	c.Register(&transferCmd{app: a}, "accounts")

	c.Register(&categoriesCmd{app: a}, "categories")

	c.Register(&addTransactionCmd{app: a}, "transactions")
	c.Register(&statsCmd{app: a}, "transactions")
}

func (a *App) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

func (a *App) errOut() io.Writer {
	if a.Err == nil {
		return os.Stderr
	}
	return a.Err
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// fail prints to stderr and returns ExitFailure.
func (a *App) fail(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(a.errOut(), "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// ledger is an open ledger: the service for mutations and the storage for
// whole-document reads.
type ledger struct {
	Service *service.Service
	Storage *storage.Storage
	close   func()
}

func (l *ledger) Close() {
	l.close()
}

// open wires the configured blob store, the operator queue and the service.
// Callers must Close the returned ledger so queued writes are drained.
func (a *App) open() (*ledger, error) {
	load := a.LoadConfig
	if load == nil {
		load = config.ProcessEnvironmentVariables
	}
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	logger := logging.SetupLogging(cfg.LogLevel)
	logger.Out = a.errOut()
	if cfg.Storage.Backend == config.BackendMemory {
		logger.Warn("memory backend: changes are discarded when the command exits")
	}

	blobs, closer, err := blobstore.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}

	ledgerStorage := storage.NewStorage(blobs, cfg.Storage.Key)
	delegator := operator.NewOperatorDelegator(ledgerStorage, cfg.Operator.QueueSize, logger)
	delegator.Start()

	return &ledger{
		Service: service.NewService(ledgerStorage, delegator),
		Storage: ledgerStorage,
		close: func() {
			delegator.Stop()
			if err := closer.Close(); err != nil {
				logger.WithError(err).Warn("closing blob store")
			}
		},
	}, nil
}

// resolveAccount accepts an account id, symbol or name. Symbols match
// exactly and names case-insensitively, the same way they are kept unique.
// A reference that is one account's symbol and another's name is ambiguous.
func resolveAccount(ctx context.Context, svc *service.Service, ref string) (string, error) {
	accounts, err := svc.Account.ListAccounts(ctx)
	if err != nil {
		return "", err
	}
	for _, a := range accounts {
		if a.ID == ref {
			return a.ID, nil
		}
	}

	var matches []string
	for _, a := range accounts {
		if a.Symbol == ref || strings.EqualFold(strings.TrimSpace(a.Name), strings.TrimSpace(ref)) {
			matches = append(matches, a.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no account matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches %d accounts, use the account id", ref, len(matches))
	}
}

// resolveCategory accepts a category id or a name of the given type.
func resolveCategory(ctx context.Context, svc *service.Service, ref string, t category.Type) (string, error) {
	categories, err := svc.Category.ListCategories(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range categories {
		if c.ID == ref {
			return c.ID, nil
		}
	}
	for _, c := range categories {
		if c.Type == t && strings.EqualFold(c.Name, ref) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("no %s category matches %q", strings.ToLower(string(t)), ref)
}

// parseDate accepts a plain date or an RFC3339 timestamp. Empty means zero,
// which the service turns into now.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if d, err := time.Parse(dateLayout, s); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC3339", s)
	}
	return d, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// printMarkdown writes the markdown as is when raw, otherwise styled.
func (a *App) printMarkdown(markdown string, raw bool, width int) error {
	if raw {
		_, err := io.WriteString(a.out(), markdown)
		return err
	}
	rendered, err := report.RenderMarkdown(markdown, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.out(), rendered)
	return err
}
