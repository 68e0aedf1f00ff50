package service

import (
	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage/account"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/transfer"
)

// Error kinds callers can tell apart with errors.Is. Anything else is a
// storage failure passed through from the blob store.
var (
	ErrDuplicateAccountName   = account.ErrDuplicateName
	ErrDuplicateAccountSymbol = account.ErrDuplicateSymbol
	ErrDuplicateCategory      = category.ErrDuplicate
	ErrInvalidCategoryType    = category.ErrInvalidType
	ErrAccountNotFound        = account.ErrNotFound
	ErrCategoryNotFound       = category.ErrNotFound
	ErrCategoryTypeMismatch   = actions.ErrCategoryTypeMismatch
	ErrSameAccountTransfer    = transfer.ErrSameAccount
	ErrNonPositiveAmount      = actions.ErrNonPositiveAmount
	ErrUnknownCurrency        = actions.ErrUnknownCurrency
)
