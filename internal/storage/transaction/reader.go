package transaction

import "time"

type Reader struct {
	transactions *[]*Transaction
}

func NewReader(transactions *[]*Transaction) *Reader {
	return &Reader{transactions: transactions}
}

func (r *Reader) List() []Transaction {
	return r.Filter(&TransactionFilter{})
}

// FindByID returns a copy of the transaction, or nil.
func (r *Reader) FindByID(id string) *Transaction {
	for _, t := range *r.transactions {
		if t.ID == id {
			clone := *t
			return &clone
		}
	}
	return nil
}

// ListByDateRange returns transactions dated within [start, end].
func (r *Reader) ListByDateRange(start, end time.Time) []Transaction {
	return r.Filter(&TransactionFilter{Start: &start, End: &end})
}

func (r *Reader) ListByCategory(categoryID string) []Transaction {
	return r.Filter(&TransactionFilter{CategoryID: categoryID})
}

func (r *Reader) ListByAccount(accountID string) []Transaction {
	return r.Filter(&TransactionFilter{AccountID: accountID})
}

// Filter returns copies of the matching transactions in insertion order.
func (r *Reader) Filter(filter *TransactionFilter) []Transaction {
	result := make([]Transaction, 0)
	for _, t := range *r.transactions {
		if filter.matches(t) {
			result = append(result, *t)
		}
	}
	return result
}
