// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the accounts API.
//
// Each invocation runs one command against the server through an
// [adapter.AccountsClient]. Commands that need authentication log in first
// with the supplied credentials, so the client keeps no state between runs.
package client
