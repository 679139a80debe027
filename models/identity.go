// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the authenticated caller resolved by the authorization guard.
//
// It is constructed once per request and attached to the request context
// by value; downstream handlers read it and never modify it.
type Identity struct {
	// UserID is the identifier of the authenticated user.
	UserID int64

	// Username is known only for session-backed identities. Token-backed
	// identities carry the user ID alone.
	Username string

	// SessionID is the server-side session the request was authenticated
	// with. Empty for token-backed identities.
	SessionID string
}
