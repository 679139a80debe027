// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the account workflow: registration, login,
// token and session handling, and the user views.
package service

import (
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/crypto"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
)

// Services bundles every service the transport layer depends on.
// SessionService is nil in token mode.
type Services struct {
	AuthService    AuthService
	SessionService SessionService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewPasswordHasher(cfg.App.PasswordCost)

	authService, err := NewAuthService(storages.UserRepository, hasher, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	services := &Services{
		AuthService:    authService,
		UserService:    NewUserService(storages.UserRepository, logger),
		AppInfoService: appInfoService,
	}

	if cfg.App.AuthMode == config.AuthModeSession {
		services.SessionService = NewSessionService(storages.SessionRepository, cfg.App, logger)
	}

	return services, nil
}
