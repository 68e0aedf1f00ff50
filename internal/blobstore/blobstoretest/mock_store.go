// Package blobstoretest provides a testify mock of blobstore.Store for
// injecting storage failures.
package blobstoretest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-ledger/internal/blobstore"
)

var _ blobstore.Store = (*MockStore)(nil)

type MockStore struct {
	mock.Mock
}

// NewMockStore creates a MockStore whose expectations are asserted when the
// test finishes.
func NewMockStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStore {
	m := &MockStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockStore) Read(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) Write(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
