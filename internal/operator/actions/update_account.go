package actions

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
)

// UpdateAccount merges Update into the account. Result stays nil when the id
// does not exist.
type UpdateAccount struct {
	ID     string
	Update account.AccountUpdate

	Result *account.Account
}

func (u *UpdateAccount) ActionName() string { return "UpdateAccount" }

func (u *UpdateAccount) Perform(_ context.Context, writer *storage.Writer) error {
	update := u.Update
	if update.Currency != nil {
		currency, err := normalizeCurrency(*update.Currency)
		if err != nil {
			return err
		}
		update.Currency = &currency
	}

	updated, err := writer.Account.Update(u.ID, &update)
	if err != nil {
		return err
	}

	u.Result = updated
	return nil
}
