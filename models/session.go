// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a server-side login session keyed by an opaque identifier.
// The client holds only the signed identifier inside an HTTP-only cookie.
type Session struct {
	// ID is the opaque, unguessable session identifier.
	ID string

	// UserID is the owner of the session.
	UserID int64

	// Username is the owner's username captured at login.
	Username string

	// CreatedAt is the moment the session was issued.
	CreatedAt time.Time

	// ExpiresAt is the moment after which the session is no longer active.
	ExpiresAt time.Time
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// IsExpired reports whether the session is no longer active at now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Identity converts the session into the request identity it authenticates.
func (s Session) Identity() Identity {
	return Identity{
		UserID:    s.UserID,
		Username:  s.Username,
		SessionID: s.ID,
	}
}
