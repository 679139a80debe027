// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockSessionService struct {
	createSessionFn  func(ctx context.Context, user models.User) (models.Session, string, error)
	resolveSessionFn func(ctx context.Context, cookieValue string) (models.Session, error)
	destroySessionFn func(ctx context.Context, id string) error
}

func (m *mockSessionService) CreateSession(ctx context.Context, user models.User) (models.Session, string, error) {
	return m.createSessionFn(ctx, user)
}

func (m *mockSessionService) ResolveSession(ctx context.Context, cookieValue string) (models.Session, error) {
	return m.resolveSessionFn(ctx, cookieValue)
}

func (m *mockSessionService) DestroySession(ctx context.Context, id string) error {
	return m.destroySessionFn(ctx, id)
}

func (m *mockSessionService) PurgeExpired(context.Context) (int64, error) {
	return 0, nil
}

type mockUserService struct {
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	getProfileFn func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig(mode string) config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			AuthMode:          mode,
			TokenSignKey:      "test-sign-key",
			TokenIssuer:       "go-accounts-test",
			TokenDuration:     time.Hour,
			SessionSecret:     "test-session-secret",
			SessionDuration:   time.Hour,
			SessionCookieName: "session_id",
			SessionSameSite:   "lax",
			PasswordCost:      4,
			Version:           "test",
		},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

func newTestHandler(mode string, svcs *service.Services) *Handler {
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, testConfig(mode), logger.Nop())
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}
