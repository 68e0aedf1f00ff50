package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name           string `json:"name" minLength:"1" doc:"Account name, unique ignoring case"`
	Balance        string `json:"balance,omitempty" doc:"Opening balance (e.g. '0' or '1234.56'), defaults to 0"`
	Currency       string `json:"currency,omitempty" doc:"ISO 4217 currency code, defaults to USD"`
	Symbol         string `json:"symbol" minLength:"1" doc:"Short display symbol, unique across accounts"`
	Color          string `json:"color,omitempty" doc:"Display color"`
	IncludeInTotal bool   `json:"includeInTotal,omitempty" doc:"Whether the balance counts towards the total"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, create account.AccountCreate) (*account.Account, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account with the given name, symbol, currency and opening balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (account.AccountCreate, error) {
	balance := decimal.Zero
	if input.Body.Balance != "" {
		var err error
		if balance, err = handlerutil.ParseAmount("balance", input.Body.Balance); err != nil {
			return account.AccountCreate{}, err
		}
	}

	return account.AccountCreate{
		Name:           input.Body.Name,
		Balance:        balance,
		Currency:       input.Body.Currency,
		Symbol:         input.Body.Symbol,
		Color:          input.Body.Color,
		IncludeInTotal: input.Body.IncludeInTotal,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	create, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(ctx, "createAccountMs")
	created, err := h.AccountService.CreateAccount(ctx, create)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError("failed to create account", err)
	}

	logging.AddData(ctx, "accountID", created.ID)

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   fromStorage(created),
	}, nil
}
