// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Only the secret of
// the active auth mode is required.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}

	return nil
}

func (app *App) validate() error {
	switch app.AuthMode {
	case AuthModeToken:
		if app.TokenSignKey == "" {
			return ErrMissingTokenSignKey
		}
		if app.TokenIssuer == "" || app.TokenDuration <= 0 {
			return ErrInvalidTokenConfigs
		}
	case AuthModeSession:
		if app.SessionSecret == "" {
			return ErrMissingSessionSecret
		}
		if app.SessionDuration <= 0 || app.SessionCookieName == "" {
			return ErrInvalidSessionConfigs
		}
		switch strings.ToLower(app.SessionSameSite) {
		case "lax", "strict", "none":
		default:
			return fmt.Errorf("%w: unknown SameSite policy %q", ErrInvalidSessionConfigs, app.SessionSameSite)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAuthMode, app.AuthMode)
	}

	if app.PasswordCost < bcrypt.MinCost || app.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %d", ErrInvalidPasswordCost, app.PasswordCost)
	}

	return nil
}
