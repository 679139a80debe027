// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Built-in defaults applied before any other source.
const (
	defaultAuthMode             = AuthModeToken
	defaultTokenIssuer          = "go-accounts"
	defaultTokenDuration        = time.Hour
	defaultSessionDuration      = 24 * time.Hour
	defaultSessionCookieName    = "session_id"
	defaultSessionSameSite      = "lax"
	defaultPasswordCost         = 10
	defaultLogLevel             = "info"
	defaultVersion              = "dev"
	defaultDriver               = DriverPostgres
	defaultMaxOpenConns         = 10
	defaultMaxIdleConns         = 5
	defaultConnMaxLifetime      = 30 * time.Minute
	defaultPort                 = "3000"
	defaultRequestTimeout       = 30 * time.Second
	defaultSessionSweepInterval = 10 * time.Minute
)

type configBuilder struct {
	args    []string
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{
		args:    args,
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.resolveAliases()

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			AuthMode:          defaultAuthMode,
			TokenIssuer:       defaultTokenIssuer,
			TokenDuration:     defaultTokenDuration,
			SessionDuration:   defaultSessionDuration,
			SessionCookieName: defaultSessionCookieName,
			SessionSameSite:   defaultSessionSameSite,
			PasswordCost:      defaultPasswordCost,
			LogLevel:          defaultLogLevel,
			Version:           defaultVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver:          defaultDriver,
				MaxOpenConns:    defaultMaxOpenConns,
				MaxIdleConns:    defaultMaxIdleConns,
				ConnMaxLifetime: defaultConnMaxLifetime,
			},
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			SessionSweepInterval: defaultSessionSweepInterval,
		},
		Port: defaultPort,
	})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

// resolveAliases fills the listen address and DSN from the conventional
// PORT and DATABASE_URL variables when they were not set explicitly.
func (cfg *StructuredConfig) resolveAliases() {
	if cfg.Server.HTTPAddress == "" && cfg.Port != "" {
		cfg.Server.HTTPAddress = ":" + cfg.Port
	}
	if cfg.Storage.DB.DSN == "" && cfg.DatabaseURL != "" {
		cfg.Storage.DB.DSN = cfg.DatabaseURL
	}
}
