// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-accounts/internal/adapter"
	"github.com/MKhiriev/go-accounts/internal/client"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/caarlos0/env/v11"
)

func main() {
	log := logger.NewConsoleLogger("go-accounts-client")

	var cfg adapter.Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("error parsing env configs")
	}

	fs := flag.NewFlagSet("go-accounts-client", flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, client.Usage) }
	fs.StringVar(&cfg.BaseURL, "server", cfg.BaseURL, "accounts server address")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "request timeout")
	fs.StringVar(&cfg.SessionCookieName, "cookie", cfg.SessionCookieName, "session cookie name")
	logLevel := fs.String("log-level", "warn", "log level")
	_ = fs.Parse(os.Args[1:])

	if err := logger.SetLevel(*logLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "localhost:3000"
	}

	accounts, err := adapter.NewHTTPAccountsClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating accounts client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(accounts, os.Stdout, log)
	if err = app.Run(ctx, fs.Args()); err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprint(os.Stderr, client.Usage)
		}
		log.Error().Err(err).Send()
		stop()
		os.Exit(1)
	}
}
