package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-ledger/api"
	"github.com/carson-networks/budget-ledger/internal/blobstore"
	"github.com/carson-networks/budget-ledger/internal/config"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/operator"
	"github.com/carson-networks/budget-ledger/internal/service"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithField("backend", envConfig.Storage.Backend).Info("budget-ledger starting")

	blobs, closer, err := blobstore.Open(envConfig.Storage)
	if err != nil {
		logger.WithError(err).Fatal("blobstore.Open")
		return
	}
	defer closer.Close()

	ledgerStorage := storage.NewStorage(blobs, envConfig.Storage.Key)
	delegator := operator.NewOperatorDelegator(ledgerStorage, envConfig.Operator.QueueSize, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(ledgerStorage, delegator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seeded, err := svc.Initialize(ctx)
	if err != nil {
		logger.WithError(err).Fatal("service.Initialize")
		return
	}
	logger.WithField("seeded", seeded).Info("ledger initialized")

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Service: svc,
		Storage: ledgerStorage,
	}
	httpRest.Serve(ctx)
}
