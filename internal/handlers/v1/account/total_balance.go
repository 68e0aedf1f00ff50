package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/service"
)

// CurrencyTotal is the summed balance of the included accounts in one
// currency.
type CurrencyTotal struct {
	Currency string `json:"currency" doc:"ISO 4217 currency code"`
	Total    string `json:"total" doc:"Decimal sum of balances"`
	Accounts int    `json:"accounts" doc:"Number of accounts summed"`
}

// TotalBalanceOutput is the Huma output for the total balance.
type TotalBalanceOutput struct {
	Body struct {
		Totals []CurrencyTotal `json:"totals" doc:"One entry per currency, never converted"`
	}
}

// totalBalancer is the interface for summing account balances.
type totalBalancer interface {
	GetTotalBalance(ctx context.Context) ([]service.CurrencyTotal, error)
}

// TotalBalanceHandler handles GET /v1/account/total.
type TotalBalanceHandler struct {
	AccountService totalBalancer
}

// NewTotalBalanceHandler creates a new TotalBalanceHandler.
func NewTotalBalanceHandler(svc totalBalancer) *TotalBalanceHandler {
	return &TotalBalanceHandler{AccountService: svc}
}

// Register registers the total balance endpoint with the Huma API.
func (h *TotalBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-total-balance",
		Method:      http.MethodGet,
		Path:        "/v1/account/total",
		Summary:     "Total balance",
		Description: "Sums the balances of accounts included in the total, per currency.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *TotalBalanceHandler) handle(ctx context.Context, _ *struct{}) (*TotalBalanceOutput, error) {
	stopTimer := logging.Timed(ctx, "totalBalanceMs")
	totals, err := h.AccountService.GetTotalBalance(ctx)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to compute total balance", err)
	}

	out := &TotalBalanceOutput{}
	out.Body.Totals = make([]CurrencyTotal, len(totals))
	for i, total := range totals {
		out.Body.Totals[i] = CurrencyTotal{
			Currency: total.Currency,
			Total:    total.Total.String(),
			Accounts: total.Accounts,
		}
	}
	return out, nil
}
