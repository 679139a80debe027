// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the accounts service and shuts
// it down gracefully when its context is cancelled.
package server
