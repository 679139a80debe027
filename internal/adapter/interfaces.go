// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the go-accounts HTTP API.
//
// [AccountsClient] hides the authentication mode of the server: after a
// successful Login it keeps whichever credential the server issued (a
// bearer token or a session cookie) and attaches it to later requests.
//
// HTTP failures are mapped onto the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/accounts_client_mock.go -package=mock

// AccountsClient talks to a go-accounts server.
type AccountsClient interface {
	// Register creates an account and returns its id. It does not log in.
	Register(ctx context.Context, user models.User) (int64, error)

	// Login authenticates and stores the issued credential for later calls.
	Login(ctx context.Context, user models.User) error

	// Logout destroys the server-side session and forgets the credential.
	Logout(ctx context.Context) error

	Profile(ctx context.Context) (models.User, error)
	Users(ctx context.Context) ([]models.User, error)
	Version(ctx context.Context) (string, error)

	// Token returns the stored bearer token, or "" in session mode or before
	// Login.
	Token() string

	// SetToken replaces the stored bearer token.
	SetToken(token string)
}
