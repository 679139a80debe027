// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error listing users")
		utils.WriteError(w, app.MsgInternal, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.IdentityFromContext(ctx)
	if !ok {
		log.Err(ErrNoIdentity).Send()
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.GetProfile(ctx, identity.UserID)
	if err != nil {
		resp := responseFromError(err)
		log.Err(err).Int64("user_id", identity.UserID).Msg("error getting profile")
		utils.WriteError(w, resp.message, resp.status)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
