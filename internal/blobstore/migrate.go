package blobstore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrations embed.FS

// MigrationStatus reports the schema version before and after Up.
type MigrationStatus struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// MigrateSQLite runs the embedded migrations against a SQLite file.
func MigrateSQLite(path string) (MigrationStatus, error) {
	return runMigrations(sqliteDialect, path)
}

// MigratePostgres runs the embedded migrations against a PostgreSQL database.
func MigratePostgres(dsn string) (MigrationStatus, error) {
	return runMigrations(postgresDialect, dsn)
}

func migrateUp(d dialect, dsn string) error {
	_, err := runMigrations(d, dsn)
	return err
}

// runMigrations uses its own connection, closed together with the migrator.
func runMigrations(d dialect, dsn string) (MigrationStatus, error) {
	var status MigrationStatus

	db, err := sql.Open(d.driverName, dsn)
	if err != nil {
		return status, fmt.Errorf("blobstore: open %s for migration: %w", d.name, err)
	}

	var driver database.Driver
	switch d.name {
	case sqliteDialect.name:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case postgresDialect.name:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		err = fmt.Errorf("no migration driver for %s", d.name)
	}
	if err != nil {
		_ = db.Close()
		return status, fmt.Errorf("blobstore: migration driver: %w", err)
	}

	source, err := iofs.New(migrations, "migrations/"+d.name)
	if err != nil {
		_ = db.Close()
		return status, fmt.Errorf("blobstore: migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, d.name, driver)
	if err != nil {
		_ = db.Close()
		return status, fmt.Errorf("blobstore: migrate.NewWithInstance: %w", err)
	}
	defer func() {
		_, _ = m.Close()
		_ = db.Close()
	}()

	status.PreMigrationVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return status, fmt.Errorf("blobstore: pre-migration version: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return status, fmt.Errorf("blobstore: migrate up: %w", err)
	}

	status.PostMigrationVersion, _, err = m.Version()
	if err != nil {
		return status, fmt.Errorf("blobstore: post-migration version: %w", err)
	}
	return status, nil
}
