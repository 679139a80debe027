// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
)

func (h *Handler) sessionCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     h.app.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.app.SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSiteMode(h.app.SessionSameSite),
	}
}

// expiredSessionCookie instructs the client to drop the session cookie.
func (h *Handler) expiredSessionCookie() *http.Cookie {
	c := h.sessionCookie("")
	c.MaxAge = -1
	return c
}

func sameSiteMode(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
