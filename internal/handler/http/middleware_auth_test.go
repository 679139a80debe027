// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityRecorder is a terminal handler that captures the identity the
// guard placed in the context.
func identityRecorder(got *models.Identity, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		*got, _ = utils.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// ─────────────────────────────────────────────
// tokenAuth
// ─────────────────────────────────────────────

func TestTokenAuth(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
			if s == "good" {
				return models.Token{UserID: 42}, nil
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(config.AuthModeToken, &service.Services{AuthService: auth})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
		wantCalled bool
	}{
		{"valid", "Bearer good", http.StatusOK, "", true},
		{"lowercase scheme", "bearer good", http.StatusOK, "", true},
		{"missing header", "", http.StatusUnauthorized, app.MsgUnauthorized, false},
		{"no token", "Bearer", http.StatusBadRequest, app.MsgInvalidToken, false},
		{"wrong scheme", "Basic good", http.StatusBadRequest, app.MsgInvalidToken, false},
		{"invalid token", "Bearer bad", http.StatusBadRequest, app.MsgInvalidToken, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got    models.Identity
				called bool
			)
			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.tokenAuth(identityRecorder(&got, &called)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantCalled {
				assert.Equal(t, int64(42), got.UserID)
			} else {
				assert.Equal(t, tt.wantMsg, decodeError(t, rec))
			}
		})
	}
}

// ─────────────────────────────────────────────
// sessionAuth
// ─────────────────────────────────────────────

func TestSessionAuth(t *testing.T) {
	sessions := &mockSessionService{
		resolveSessionFn: func(_ context.Context, v string) (models.Session, error) {
			switch v {
			case "good":
				return models.Session{ID: "sid", UserID: 5, Username: "alice"}, nil
			case "broken":
				return models.Session{}, errors.New("db down")
			default:
				return models.Session{}, service.ErrSessionNotFound
			}
		},
	}
	h := newTestHandler(config.AuthModeSession, &service.Services{SessionService: sessions})

	tests := []struct {
		name       string
		cookie     string
		wantStatus int
		wantCalled bool
	}{
		{"valid", "good", http.StatusOK, true},
		{"no cookie", "", http.StatusUnauthorized, false},
		{"unknown session", "expired", http.StatusUnauthorized, false},
		{"store failure", "broken", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got    models.Identity
				called bool
			)
			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session_id", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			h.sessionAuth(identityRecorder(&got, &called)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantCalled {
				assert.Equal(t, models.Identity{UserID: 5, Username: "alice", SessionID: "sid"}, got)
			}
		})
	}
}

func TestSessionAuth_IgnoresBearerHeader(t *testing.T) {
	h := newTestHandler(config.AuthModeSession, &service.Services{SessionService: &mockSessionService{}})

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer something")
	rec := httptest.NewRecorder()

	h.sessionAuth(http.NotFoundHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
