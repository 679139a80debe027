// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/utils"
)

// tokenAuth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the caller's [models.Identity] in the request context before delegating to
// the next handler.
//
// A missing header is answered with 401. A header that cannot be parsed, or
// a token that is expired, badly signed or issued by someone else, is
// answered with 400.
func (h *Handler) tokenAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(err).Send()
			utils.WriteError(w, app.MsgInvalidToken, http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgInvalidToken, http.StatusBadRequest)
			return
		}

		ctx = utils.WithIdentity(ctx, token.Identity())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionAuth is an HTTP middleware that enforces cookie-session
// authentication. A missing, forged or expired session is answered with
// 401; a failing session store with 500.
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.app.SessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Info().Err(ErrNoSessionCookie).Send()
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		session, err := h.services.SessionService.ResolveSession(ctx, cookie.Value)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				log.Info().Err(err).Send()
				utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during resolving session")
			utils.WriteError(w, app.MsgInternal, http.StatusInternalServerError)
			return
		}

		ctx = utils.WithIdentity(ctx, session.Identity())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
