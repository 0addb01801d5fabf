// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/internal/utils"
	"github.com/mkarev/vault-sync/models"
)

// commit applies a batch of entity changes for the authenticated user.
// The user identifier always comes from the validated token, never from
// the request body.
func (h *Handler) commit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.commit").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	var commitRequest models.CommitRequest
	if err := json.NewDecoder(r.Body).Decode(&commitRequest); err != nil {
		log.Err(err).Str("func", "*Handler.commit").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	commitRequest.UserID = userID

	response, err := h.services.CommitService.Commit(ctx, commitRequest)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.commit").Msg("error committing entries")
		http.Error(w, "error committing entries", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
