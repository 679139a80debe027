// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the one-way password hashing used for stored
// credentials.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted, slow hashes and
// checks candidates against them. Implementations must be safe for
// concurrent use.
type PasswordHasher interface {
	// Hash returns a self-describing hash of plaintext with a fresh random
	// salt. Two calls with the same input return different strings.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. The comparison is
	// constant-time, and any malformed hash yields false.
	Verify(plaintext, hash string) bool
}
