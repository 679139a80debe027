// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout           = 15 * time.Second
	defaultSessionCookieName = "session_id"
)

// Config holds the client settings.
type Config struct {
	// BaseURL is the server address, with or without scheme
	// (e.g. "localhost:3000" or "https://accounts.example.com").
	BaseURL string `env:"ACCOUNTS_URL"`

	// Timeout bounds a single request. Zero means 15s.
	Timeout time.Duration `env:"ACCOUNTS_TIMEOUT"`

	// SessionCookieName must match the server's cookie name when it runs
	// in session mode. Empty means "session_id".
	SessionCookieName string `env:"ACCOUNTS_SESSION_COOKIE_NAME"`
}

type httpAccountsClient struct {
	client *utils.HTTPClient

	cookieName string

	mu      sync.RWMutex
	token   string
	session *http.Cookie

	logger *logger.Logger
}

// NewHTTPAccountsClient constructs an HTTP implementation of
// [AccountsClient]. It fails if cfg.BaseURL is empty or not a valid URL.
func NewHTTPAccountsClient(cfg Config, logger *logger.Logger) (AccountsClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid accounts server address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cookieName := cfg.SessionCookieName
	if cookieName == "" {
		cookieName = defaultSessionCookieName
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetError(&models.ErrorResponse{})

	return &httpAccountsClient{
		client:     client,
		cookieName: cookieName,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAccountsClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAccountsClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the user to /register and returns the new account id.
func (h *httpAccountsClient) Register(ctx context.Context, user models.User) (int64, error) {
	var result models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.User{Username: user.Username, Email: user.Email, Password: user.Password}).
		SetResult(&result).
		Post("/register")
	if err != nil {
		return 0, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.UserID, nil
}

// Login POSTs the credentials to /login. A bearer token from the
// Authorization header is preferred; otherwise the session cookie is kept.
func (h *httpAccountsClient) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.User{Username: user.Username, Password: user.Password}).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if header := resp.Header().Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return fmt.Errorf("login parse bearer token: %w", err)
		}
		h.setCredential(token, nil)
		return nil
	}

	for _, c := range resp.Cookies() {
		if c.Name == h.cookieName && c.Value != "" {
			h.setCredential("", &http.Cookie{Name: c.Name, Value: c.Value})
			return nil
		}
	}

	return ErrNoCredential
}

// Logout calls GET /logout and forgets the stored credential on success.
func (h *httpAccountsClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.setCredential("", nil)
	return nil
}

func (h *httpAccountsClient) Profile(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).SetResult(&user).Get("/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpAccountsClient) Users(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)

	resp, err := h.authedRequest(ctx).SetResult(&users).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpAccountsClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpAccountsClient) setCredential(token string, session *http.Cookie) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
	h.session = session
}

func (h *httpAccountsClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.token != "" {
		req.SetHeader("Authorization", utils.BearerHeaderValue(h.token))
	}
	if h.session != nil {
		req.SetCookie(h.session)
	}
	return req
}
