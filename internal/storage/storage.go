package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-ledger/internal/blobstore"
)

// Storage owns the ledger document persisted under one key of a blob store.
// Every Read and Write loads the document afresh; nothing is cached.
type Storage struct {
	blobs blobstore.Store
	key   string

	// Clock and NewID are replaceable for tests. Stored timestamps carry
	// millisecond precision.
	Clock func() time.Time
	NewID func() string
}

func NewStorage(blobs blobstore.Store, key string) *Storage {
	return &Storage{
		blobs: blobs,
		key:   key,
		Clock: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		NewID: func() string { return uuid.Must(uuid.NewV4()).String() },
	}
}

func (s *Storage) Key() string {
	return s.key
}

func (s *Storage) load(ctx context.Context) (*Document, error) {
	value, found, err := s.blobs.Read(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("storage: load document: %w", err)
	}
	if !found {
		return NewDocument(), nil
	}
	return DecodeDocument([]byte(value))
}

// Read returns a snapshot of the current document. An unseeded document is
// seeded in memory only.
func (s *Storage) Read(ctx context.Context) (*Reader, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	seed(doc, s.Clock())
	return NewReader(doc), nil
}

// Write loads the document into a working copy. Changes become durable only
// through Commit, which writes the whole document back.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return newWriter(s, doc, s.Clock()), nil
}

// Snapshot returns the raw stored value, for tests and diagnostics.
func (s *Storage) Snapshot(ctx context.Context) (string, bool, error) {
	return s.blobs.Read(ctx, s.key)
}
