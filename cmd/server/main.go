// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/handler"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/server"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/workers"
	"github.com/MKhiriev/go-accounts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-accounts-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if buildInfo.HasVersion() && (cfg.App.Version == "" || cfg.App.Version == "dev") {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	err = run(ctx, *cfg, log)
	stop()
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

// run wires storages, services, handlers, server and workers and serves
// until ctx is cancelled. Storages are closed on every return path.
func run(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	bg := workers.NewWorkers(services, cfg, log)
	workersDone := make(chan error, 1)
	go func() { workersDone <- bg.Run(ctx) }()

	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Str("auth_mode", cfg.App.AuthMode).
		Str("driver", cfg.Storage.DB.Driver).
		Msg("starting server")

	serveErr := srv.RunServer(ctx)

	cancel()
	if err = <-workersDone; err != nil {
		log.Err(err).Msg("workers stopped with error")
	}

	if serveErr != nil {
		return fmt.Errorf("server stopped with error: %w", serveErr)
	}
	return nil
}
