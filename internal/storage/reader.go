package storage

import (
	"github.com/carson-networks/budget-ledger/internal/storage/account"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
	"github.com/carson-networks/budget-ledger/internal/storage/transfer"
)

type Reader struct {
	Accounts     *account.Reader
	Categories   *category.Reader
	Transactions *transaction.Reader
	Transfers    *transfer.Reader
}

func NewReader(doc *Document) *Reader {
	return &Reader{
		Accounts:     account.NewReader(&doc.Accounts),
		Categories:   category.NewReader(&doc.Categories),
		Transactions: transaction.NewReader(&doc.Transactions),
		Transfers:    transfer.NewReader(&doc.Transfers),
	}
}
