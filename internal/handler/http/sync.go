// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-expense-sync/internal/app"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/utils"
	"github.com/MKhiriev/go-expense-sync/models"
)

// archiveFormField is the multipart field carrying an uploaded archive.
const archiveFormField = "file"

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncStatus").Msg("no user ID was given")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	status, err := h.services.SyncOrchestrator.Status(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncStatus").Str("user_id", userID).Msg("error getting change status")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

// triggerSync handles POST /sync. An empty body syncs every configured
// target when data changed. A deferred sync is answered with 202.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.triggerSync").Msg("no user ID was given")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var syncRequest models.SyncRequest
	if err := json.NewDecoder(h.limitBody(w, r)).Decode(&syncRequest); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.triggerSync").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var (
		result models.SyncResult
		err    error
	)
	if syncRequest.Force {
		result, err = h.services.SyncOrchestrator.Sync(ctx, userID, syncRequest.SyncTargets)
	} else {
		result, err = h.services.SyncOrchestrator.MaybeSync(ctx, userID, syncRequest.SyncTargets)
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.triggerSync").Str("user_id", userID).Msg("sync failed")
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if result.Deferred {
		status = http.StatusAccepted
	}
	utils.WriteJSON(w, result, status)
}

// uploadBackup handles POST /sync/upload?mode=. The archive is the raw
// body or the multipart field "file".
func (h *Handler) uploadBackup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.uploadBackup").Msg("no user ID was given")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	mode, err := models.ParseRestoreMode(r.URL.Query().Get("mode"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadBackup").Msg("invalid restore mode")
		writeServiceError(w, err)
		return
	}

	data, err := h.readArchive(w, r)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			log.Err(err).Str("func", "*Handler.uploadBackup").Msg("archive too large")
			utils.WriteError(w, app.MsgArchiveTooLarge, http.StatusRequestEntityTooLarge)
		default:
			log.Err(err).Str("func", "*Handler.uploadBackup").Msg("error reading archive")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		}
		return
	}

	result, err := h.services.SyncOrchestrator.RestoreFromBackup(ctx, userID, data, mode)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.uploadBackup").
			Str("user_id", userID).
			Str("mode", string(mode)).
			Msg("restore from upload failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) readArchive(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body := h.limitBody(w, r)

	var data []byte
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		r.Body = body
		file, _, err := r.FormFile(archiveFormField)
		if err != nil {
			return nil, fmt.Errorf("multipart field %q: %w", archiveFormField, err)
		}
		defer file.Close()

		if data, err = io.ReadAll(file); err != nil {
			return nil, err
		}
	} else {
		var err error
		if data, err = io.ReadAll(body); err != nil {
			return nil, err
		}
	}

	if len(data) == 0 {
		return nil, ErrEmptyArchive
	}
	return data, nil
}

// downloadBackup handles GET /sync/download with a freshly exported archive.
func (h *Handler) downloadBackup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.downloadBackup").Msg("no user ID was given")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	data, snapshot, err := h.services.SyncOrchestrator.Download(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadBackup").Str("user_id", userID).Msg("error exporting snapshot")
		writeServiceError(w, err)
		return
	}

	name := fmt.Sprintf("expenses-%s.tar.gz", snapshot.ExportedAt.UTC().Format("20060102T150405Z"))
	w.Header().Set("Content-Type", "application/gzip")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(data); err != nil {
		log.Err(err).Str("func", "*Handler.downloadBackup").Msg("error writing archive")
	}
}

func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listBackups").Msg("no user ID was given")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	refs, err := h.services.SyncOrchestrator.ListBackups(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBackups").Str("user_id", userID).Msg("error listing backups")
		writeServiceError(w, err)
		return
	}
	if refs == nil {
		refs = []models.FileRef{}
	}

	utils.WriteJSON(w, refs, http.StatusOK)
}

// restoreStoredBackup handles POST /sync/backups/{name}/restore?mode=.
func (h *Handler) restoreStoredBackup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.restoreStoredBackup").Msg("no user ID was given")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	mode, err := models.ParseRestoreMode(r.URL.Query().Get("mode"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.restoreStoredBackup").Msg("invalid restore mode")
		writeServiceError(w, err)
		return
	}

	name := chi.URLParam(r, "name")
	result, err := h.services.SyncOrchestrator.RestoreFromStoredBackup(ctx, userID, name, mode)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.restoreStoredBackup").
			Str("user_id", userID).
			Str("backup", name).
			Msg("restore from stored backup failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
