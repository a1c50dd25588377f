// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-expense-sync/internal/app"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/utils"
	"github.com/MKhiriev/go-expense-sync/models"
)

// applyMutation handles POST /mutations. A create with an id the user
// already has is answered with 409 and [app.MsgRecordAlreadyExists], which
// replaying clients treat as an acknowledgement.
func (h *Handler) applyMutation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.applyMutation").Msg("no user ID was given")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var mutation models.Mutation
	if err := json.NewDecoder(h.limitBody(w, r)).Decode(&mutation); err != nil {
		log.Err(err).Str("func", "*Handler.applyMutation").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.MutationService.Apply(ctx, userID, mutation); err != nil {
		log.Err(err).
			Str("func", "*Handler.applyMutation").
			Str("user_id", userID).
			Str("mutation_id", mutation.ID).
			Msg("error applying mutation")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
