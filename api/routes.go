package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/account"
	"github.com/carson-networks/budget-ledger/internal/handlers/v1/category"
	"github.com/carson-networks/budget-ledger/internal/handlers/v1/export"
	"github.com/carson-networks/budget-ledger/internal/handlers/v1/stats"
	"github.com/carson-networks/budget-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/budget-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-ledger/internal/handlers/v1/transfer"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/report"
	"github.com/carson-networks/budget-ledger/internal/service"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

type registrar interface {
	Register(api huma.API)
}

// Handler builds the router: /status as a plain handler and every /v1
// operation through huma.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("Budget Ledger API", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	handlers := []registrar{
		account.NewListAccountsHandler(r.Service.Account),
		account.NewTotalBalanceHandler(r.Service.Account),
		account.NewGetAccountHandler(r.Service.Account),
		account.NewCreateAccountHandler(r.Service.Account),
		account.NewUpdateAccountHandler(r.Service.Account),

		category.NewListCategoriesHandler(r.Service.Category),
		category.NewMonthlyExpensesHandler(r.Service.Category),
		category.NewCreateCategoryHandler(r.Service.Category),
		category.NewUpdateCategoryHandler(r.Service.Category),
		category.NewDeleteCategoryHandler(r.Service.Category),

		transaction.NewCreateTransactionHandler(r.Service.Transaction),
		transaction.NewGetTransactionHandler(r.Service.Transaction),
		transaction.NewListTransactionsHandler(r.Service.Transaction),
		transaction.NewDeleteTransactionHandler(r.Service.Transaction),

		transfer.NewCreateTransferHandler(r.Service.Transfer),
		transfer.NewListTransfersHandler(r.Service.Transfer),

		stats.NewTransactionStatsHandler(r.Service.Stats),
		export.NewExportHandler(report.NewLoader(r.Storage)),
	}
	for _, h := range handlers {
		h.Register(humaAPI)
	}

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
