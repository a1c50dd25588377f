// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-expense-sync/internal/app"
	"github.com/MKhiriev/go-expense-sync/internal/archive"
	"github.com/MKhiriev/go-expense-sync/internal/service"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/internal/utils"
	"github.com/MKhiriev/go-expense-sync/models"
)

type errorStatus struct {
	err     error
	status  int
	message string
}

// errorStatusMap is matched top to bottom. A rolled back restore wraps the
// store error that caused it, so it comes first.
var errorStatusMap = []errorStatus{
	{service.ErrRestoreTransaction, http.StatusInternalServerError, app.MsgRestoreFailed},
	{service.ErrConcurrentSync, http.StatusConflict, app.MsgSyncInProgress},
	{service.ErrInvalidUserID, http.StatusBadRequest, app.MsgNoUserIDProvided},
	{service.ErrInvalidMutation, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrNoSyncTarget, http.StatusBadRequest, app.MsgNoSyncTarget},
	{service.ErrBackupsNotConfigured, http.StatusNotImplemented, app.MsgBackupsNotConfigured},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError, app.MsgVersionIsNotSpecified},

	{models.ErrUnknownRestoreMode, http.StatusBadRequest, app.MsgInvalidRestoreMode},

	{archive.ErrUnsupportedFormatVersion, http.StatusUnprocessableEntity, app.MsgUnsupportedSnapshotVersion},
	{archive.ErrSealedArchive, http.StatusUnprocessableEntity, app.MsgSealedSnapshot},
	{archive.ErrMalformedSnapshot, http.StatusUnprocessableEntity, app.MsgMalformedSnapshot},

	{store.ErrDuplicateRecord, http.StatusConflict, app.MsgRecordAlreadyExists},
	{store.ErrRecordNotFound, http.StatusNotFound, app.MsgDataNotFound},
	{store.ErrInvalidReference, http.StatusConflict, app.MsgInvalidReference},
	{store.ErrUnknownTable, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{store.ErrBackupNotFound, http.StatusNotFound, app.MsgBackupNotFound},
	{store.ErrForeignBackupRef, http.StatusNotFound, app.MsgBackupNotFound},
	{store.ErrInvalidBackupName, http.StatusBadRequest, app.MsgBackupNotFound},
	{store.ErrRemoteUnavailable, http.StatusServiceUnavailable, app.MsgRemoteUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

func statusFromError(err error) int {
	status, _ := classifyError(err)
	return status
}

func classifyError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError answers with the status and message err maps to.
// Rolled back restores also report how many writes were attempted.
func writeServiceError(w http.ResponseWriter, err error) {
	status, message := classifyError(err)
	resp := utils.ErrorResponse{Error: message}

	var txErr *service.RestoreTransactionError
	if errors.As(err, &txErr) {
		attempted := txErr.RecordsAttempted
		resp.RecordsAttempted = &attempted
	}

	_, _ = utils.WriteJSON(w, resp, status)
}
