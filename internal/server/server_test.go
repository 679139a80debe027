// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/handler"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type versionStub struct{}

func (versionStub) GetAppVersion(context.Context) string { return "9.9.9" }

func newTestServer(t *testing.T) (*server, <-chan string) {
	t.Helper()
	cfg := config.StructuredConfig{
		App:    config.App{AuthMode: config.AuthModeToken},
		Server: config.Server{HTTPAddress: "127.0.0.1:0"},
	}

	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: versionStub{}}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)

	listening := make(chan string, 1)
	s := srv.(*server)
	s.listening = listening
	return s, listening
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	s, listening := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	var addr string
	select {
	case addr = <-listening:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start listening")
	}

	resp, err := http.Get("http://" + addr + "/api/version")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "9.9.9", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ListenError(t *testing.T) {
	s, _ := newTestServer(t)
	s.address = "256.0.0.1:bad"

	err := s.RunServer(context.Background())

	assert.Error(t, err)
}
