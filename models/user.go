// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier assigned by the store on insertion.
	UserID int64 `json:"id"`

	// Username is the unique login name of the user.
	Username string `json:"username"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// Password carries the plaintext password of an inbound registration or
	// login request. It is never persisted, logged or written to a response.
	Password string `json:"password,omitempty"`

	// PasswordHash is the adaptive one-way hash of the password. It is read
	// only by the credential verification step and is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u that holds only the non-sensitive fields
// (id, username, email).
func (u User) Public() User {
	return User{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}
