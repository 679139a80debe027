// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		resp := responseFromError(err)
		if resp.status == http.StatusInternalServerError {
			log.Err(err).Msg("unexpected error occurred during user registration")
		} else {
			log.Info().Err(err).Msg("registration rejected")
		}
		utils.WriteError(w, resp.message, resp.status)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message: app.MsgRegistered,
		UserID:  registeredUser.UserID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			utils.WriteError(w, app.MsgMissingCredentials, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCredentials):
			utils.WriteError(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteError(w, app.MsgInternal, http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")

	if h.sessionMode() {
		h.loginWithSession(w, r, foundUser)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", utils.BearerHeaderValue(token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoggedIn,
		Token:   token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) loginWithSession(w http.ResponseWriter, r *http.Request, user models.User) {
	_, cookieValue, err := h.services.SessionService.CreateSession(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of session failed")
		utils.WriteError(w, app.MsgInternal, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessionCookie(cookieValue))
	utils.WriteJSON(w, models.LoginResponse{Message: app.MsgLoggedIn}, http.StatusOK)
}

// logout destroys the caller's session and clears the cookie. It is only
// routed in session mode, behind sessionAuth.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.IdentityFromContext(ctx)
	if !ok || identity.SessionID == "" {
		log.Err(ErrNoIdentity).Send()
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	if err := h.services.SessionService.DestroySession(ctx, identity.SessionID); err != nil {
		log.Err(err).Msg("error destroying session")
		utils.WriteError(w, app.MsgLogoutFailed, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.expiredSessionCookie())
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}
