// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the accounts service.
//
// It exposes route wiring, request handlers, and middleware used by the JSON
// API. Cross-cutting concerns such as tracing, access logging, panic
// recovery, CORS and the authorization guard are handled in this package
// before requests are delegated to the service layer.
//
// The guard depends on the configured authentication mode: in token mode a
// bearer token is required in the Authorization header, in session mode a
// signed session cookie is required instead.
package http
