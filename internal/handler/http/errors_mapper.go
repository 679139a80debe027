// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses maps domain errors onto a status and a client-safe
// message. Errors not listed here are answered with 500.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidData}},
	{store.ErrUserAlreadyExists, errorResponse{http.StatusConflict, app.MsgUserExists}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentials}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusBadRequest, app.MsgInvalidToken}},
	{service.ErrSessionNotFound, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
	{store.ErrNoUserWasFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternal}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}
