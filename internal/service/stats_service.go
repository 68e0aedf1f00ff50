package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
)

// StatsQuery selects the transactions to aggregate. Start and End are
// inclusive; Type and AccountID are optional.
type StatsQuery struct {
	Start     time.Time
	End       time.Time
	Type      *category.Type
	AccountID string
}

// CategoryStat is the total of one category's transactions. Name, Icon and
// Color come from the category as it is now, not as it was when the
// transactions were recorded.
type CategoryStat struct {
	CategoryID       string
	Name             string
	Icon             string
	Color            string
	TotalAmount      decimal.Decimal
	TransactionCount int
}

// StatsService answers read-only aggregation queries.
type StatsService struct {
	storage *storage.Storage
}

// NewStatsService creates a new StatsService.
func NewStatsService(store *storage.Storage) *StatsService {
	return &StatsService{storage: store}
}

// GetTransactionStats groups the selected transactions by category, largest
// total first.
func (s *StatsService) GetTransactionStats(ctx context.Context, query StatsQuery) ([]CategoryStat, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}

	transactions := reader.Transactions.Filter(&transaction.TransactionFilter{
		Start:     &query.Start,
		End:       &query.End,
		Type:      query.Type,
		AccountID: query.AccountID,
	})
	return aggregateByCategory(transactions, reader.Categories.List()), nil
}

func aggregateByCategory(transactions []transaction.Transaction, categories []category.Category) []CategoryStat {
	byID := make(map[string]category.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	groups := make(map[string]*CategoryStat)
	for _, tx := range transactions {
		stat, ok := groups[tx.CategoryID]
		if !ok {
			stat = &CategoryStat{CategoryID: tx.CategoryID, TotalAmount: decimal.Zero}
			if c, found := byID[tx.CategoryID]; found {
				stat.Name = c.Name
				stat.Icon = c.Icon
				stat.Color = c.Color
			}
			groups[tx.CategoryID] = stat
		}
		stat.TotalAmount = stat.TotalAmount.Add(tx.Amount)
		stat.TransactionCount++
	}

	result := make([]CategoryStat, 0, len(groups))
	for _, stat := range groups {
		if stat.TotalAmount.IsPositive() {
			result = append(result, *stat)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if cmp := result[i].TotalAmount.Cmp(result[j].TotalAmount); cmp != 0 {
			return cmp > 0
		}
		return result[i].CategoryID < result[j].CategoryID
	})
	return result
}
