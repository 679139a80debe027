// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Any of them is
// fatal at startup.
var (
	// ErrInvalidAuthMode indicates an APP_AUTH_MODE other than "token" or "session".
	ErrInvalidAuthMode = errors.New("invalid auth mode")
	// ErrMissingTokenSignKey indicates token mode without a signing secret.
	ErrMissingTokenSignKey = errors.New("token sign key is required in token mode")
	// ErrMissingSessionSecret indicates session mode without a cookie secret.
	ErrMissingSessionSecret = errors.New("session secret is required in session mode")
	// ErrInvalidTokenConfigs indicates an empty issuer or non-positive token lifetime.
	ErrInvalidTokenConfigs = errors.New("invalid token configuration")
	// ErrInvalidSessionConfigs indicates a non-positive session lifetime,
	// empty cookie name or unknown SameSite policy.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidPasswordCost indicates a bcrypt cost outside the supported range.
	ErrInvalidPasswordCost = errors.New("invalid password cost")
	// ErrInvalidStorageConfigs indicates an unknown driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an empty listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
