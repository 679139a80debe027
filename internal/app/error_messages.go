// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings of the accounts
// API.
//
// Error messages are written into the "error" field of failed responses and
// never carry internal details. Success messages are written into the
// "message" field.
package app

// Error messages.
const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed."

	// MsgInvalidData is returned when a registration lacks a required field.
	MsgInvalidData = "Username, email and password are required."

	// MsgMissingCredentials is returned when a login lacks username or
	// password.
	MsgMissingCredentials = "Username and password are required."

	MsgUserExists = "Username or email already exists."

	// MsgInvalidCredentials is shared by unknown usernames and wrong
	// passwords.
	MsgInvalidCredentials = "Invalid username or password."

	MsgUnauthorized = "Unauthorized"
	MsgInvalidToken = "Invalid token"
	MsgUserNotFound = "User not found."
	MsgLogoutFailed = "Could not log out, please try again."

	// MsgInternal is returned for every unexpected failure.
	MsgInternal = "Internal server error."
)

// Success messages.
const (
	MsgRegistered = "User registered successfully!"
	MsgLoggedIn   = "Login successful!"
	MsgLoggedOut  = "Logged out successfully."
)
