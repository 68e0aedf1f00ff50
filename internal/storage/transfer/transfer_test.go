package transfer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_RejectsSameAccount(t *testing.T) {
	rows := make([]*Transfer, 0)
	w := NewWriter(&rows, time.Now(), func() string { return "x" }, func() {})

	_, err := w.Insert(&TransferCreate{FromAccountID: "a", ToAccountID: "a", Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrSameAccount)
	assert.Empty(t, rows)
}

func TestListByAccount(t *testing.T) {
	rows := make([]*Transfer, 0)
	w := NewWriter(&rows, time.Now(), func() string { return "x" }, func() {})

	_, err := w.Insert(&TransferCreate{FromAccountID: "a", ToAccountID: "b", Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)
	_, err = w.Insert(&TransferCreate{FromAccountID: "c", ToAccountID: "a", Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)

	assert.Len(t, w.ListByAccount("a"), 2)
	assert.Len(t, w.ListByAccount("b"), 1)
	assert.Empty(t, w.ListByAccount("z"))
	assert.NotNil(t, w.FindByID("x"))
}
