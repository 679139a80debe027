// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

// AuthService registers accounts, verifies credentials and, in token mode,
// issues and validates bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SessionService manages server-side sessions in session mode.
type SessionService interface {
	// CreateSession stores a new session for user and returns it together
	// with the signed value to place in the session cookie.
	CreateSession(ctx context.Context, user models.User) (models.Session, string, error)

	// ResolveSession verifies a cookie value and returns the active session
	// it refers to, or [ErrSessionNotFound].
	ResolveSession(ctx context.Context, cookieValue string) (models.Session, error)

	// DestroySession deletes the session with id.
	DestroySession(ctx context.Context, id string) error

	// PurgeExpired deletes all expired sessions and reports how many.
	PurgeExpired(ctx context.Context) (int64, error)
}

// UserService serves the non-sensitive user views.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetProfile(ctx context.Context, userID int64) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
