// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is logged by the token guard when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoSessionCookie is logged by the session guard when the request
	// carries no session cookie.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrNoIdentity means a guarded handler ran without an identity in the
	// request context.
	ErrNoIdentity = errors.New("no identity in request context")
)
