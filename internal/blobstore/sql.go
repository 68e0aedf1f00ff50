package blobstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var _ Store = (*SQLStore)(nil)

// dialect carries the statements that differ between database drivers.
type dialect struct {
	name        string
	driverName  string
	selectQuery string
	upsertQuery string
}

var (
	sqliteDialect = dialect{
		name:        "sqlite",
		driverName:  "sqlite",
		selectQuery: `SELECT blob_value FROM ledger_blobs WHERE blob_key = ?`,
		upsertQuery: `INSERT INTO ledger_blobs (blob_key, blob_value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (blob_key) DO UPDATE SET blob_value = excluded.blob_value, updated_at = excluded.updated_at`,
	}
	postgresDialect = dialect{
		name:        "postgres",
		driverName:  "postgres",
		selectQuery: `SELECT blob_value FROM ledger_blobs WHERE blob_key = $1`,
		upsertQuery: `INSERT INTO ledger_blobs (blob_key, blob_value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (blob_key) DO UPDATE SET blob_value = EXCLUDED.blob_value, updated_at = EXCLUDED.updated_at`,
	}
)

// SQLStore keeps every key as one row of the ledger_blobs table. A single
// upsert statement replaces a value, which gives per-key atomicity.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

func openSQL(d dialect, dsn string) (*SQLStore, error) {
	if err := migrateUp(d, dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open(d.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("blobstore: open %s: %w", d.name, err)
	}
	return &SQLStore{db: db, dialect: d}, nil
}

func (s *SQLStore) Read(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.dialect.selectQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("blobstore: read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) Write(ctx context.Context, key string, value string) error {
	_, err := s.db.ExecContext(ctx, s.dialect.upsertQuery, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("blobstore: write %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
