// Package blobstore holds the narrow key/value substrate the ledger document
// is persisted into, and the backends that implement it.
package blobstore

import (
	"context"
	"fmt"
	"io"

	"github.com/carson-networks/budget-ledger/internal/config"
)

// Store reads and writes whole string values by key. A missing key is
// reported with found == false and a nil error.
type Store interface {
	Read(ctx context.Context, key string) (value string, found bool, err error)
	Write(ctx context.Context, key string, value string) error
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the backend selected by cfg. The returned Closer releases any
// database handle and must be called once the store is no longer used.
func Open(cfg config.StorageConfig) (Store, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nopCloser{}, nil
	case config.BackendFile:
		store, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, nopCloser{}, nil
	case config.BackendSQLite:
		store, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case config.BackendPostgres:
		store, err := OpenPostgres(cfg.Postgres.DSN())
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("blobstore: unknown backend %q", cfg.Backend)
	}
}
