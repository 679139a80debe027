// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
)

// welcomeMessage is the plain-text body of GET /.
const welcomeMessage = "Welcome to the go-accounts API!"

type Handler struct {
	services *service.Services

	app    config.App
	server config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Str("auth_mode", cfg.App.AuthMode).Msg("http handler created")
	return &Handler{
		services: services,
		app:      cfg.App,
		server:   cfg.Server,
		logger:   logger,
	}
}

func (h *Handler) sessionMode() bool {
	return h.app.AuthMode == config.AuthModeSession
}
