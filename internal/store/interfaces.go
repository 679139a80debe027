// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user (username, email, password hash) and returns
	// it with the store-assigned id and creation time. A duplicate username
	// or email yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the full record, including the password
	// hash, or [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the record without the password hash, or
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns id, username and email of every user ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// SessionRepository persists server-side sessions in the "sessions" table.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error

	// FindActiveSession returns the session with id if it expires after now,
	// or [ErrSessionNotFound].
	FindActiveSession(ctx context.Context, id string, now time.Time) (models.Session, error)

	// DeleteSession removes the session with id. Deleting a missing session
	// is not an error.
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions removes every session whose expiry is not after
	// now and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
