package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/storage/account"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
	"github.com/carson-networks/budget-ledger/internal/storage/transfer"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Document is the whole ledger as persisted under one key. Slices keep
// insertion order so a document round-trips deterministically.
type Document struct {
	Accounts     []*account.Account         `json:"accounts"`
	Categories   []*category.Category       `json:"categories"`
	Transactions []*transaction.Transaction `json:"transactions"`
	Transfers    []*transfer.Transfer       `json:"transfers"`
}

func NewDocument() *Document {
	return &Document{
		Accounts:     make([]*account.Account, 0),
		Categories:   make([]*category.Category, 0),
		Transactions: make([]*transaction.Transaction, 0),
		Transfers:    make([]*transfer.Transfer, 0),
	}
}

// DecodeDocument parses a stored document. Empty input is an empty document.
func DecodeDocument(data []byte) (*Document, error) {
	doc := NewDocument()
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("storage: decode document: %w", err)
	}
	doc.normalize()
	return doc, nil
}

// Encode serializes the document. Missing collections encode as [].
func (d *Document) Encode() ([]byte, error) {
	d.normalize()
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("storage: encode document: %w", err)
	}
	return data, nil
}

func (d *Document) normalize() {
	if d.Accounts == nil {
		d.Accounts = make([]*account.Account, 0)
	}
	if d.Categories == nil {
		d.Categories = make([]*category.Category, 0)
	}
	if d.Transactions == nil {
		d.Transactions = make([]*transaction.Transaction, 0)
	}
	if d.Transfers == nil {
		d.Transfers = make([]*transfer.Transfer, 0)
	}
}
