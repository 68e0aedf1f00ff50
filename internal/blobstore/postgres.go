package blobstore

import (
	_ "github.com/lib/pq"
)

// OpenPostgres connects with lib/pq and migrates the ledger_blobs table.
func OpenPostgres(dsn string) (*SQLStore, error) {
	return openSQL(postgresDialect, dsn)
}
