package main

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-ledger/internal/blobstore"
	server_config "github.com/carson-networks/budget-ledger/internal/config"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	var status blobstore.MigrationStatus
	switch env.Storage.Backend {
	case server_config.BackendSQLite:
		status, err = blobstore.MigrateSQLite(env.Storage.SQLitePath)
	case server_config.BackendPostgres:
		status, err = blobstore.MigratePostgres(env.Storage.Postgres.DSN())
	default:
		logrus.WithField("backend", env.Storage.Backend).Info("backend has no schema, nothing to migrate")
		return
	}
	if err != nil {
		logrus.WithError(err).Fatal("Migrate")
		return
	}

	logrus.WithFields(logrus.Fields{
		"backend":              env.Storage.Backend,
		"preMigrationVersion":  status.PreMigrationVersion,
		"postMigrationVersion": status.PostMigrationVersion,
	}).Info("Migration status")
}
