// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-expense-sync/internal/adapter"
	"github.com/MKhiriev/go-expense-sync/internal/app"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/utils"
)

// verifyHash checks the HMAC-SHA256 of the request body against the Hash
// header. It is a no-op when no hash key is configured. The body is read
// up to the archive size limit and restored for the next handler.
func (h *Handler) verifyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		hashFromRequest := r.Header.Get(adapter.HashHeader)
		if hashFromRequest == "" {
			log.Err(ErrMissingHash).Str("func", "*Handler.verifyHash").Send()
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(h.limitBody(w, r))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				log.Err(err).Str("func", "*Handler.verifyHash").Msg("request body too large")
				utils.WriteError(w, app.MsgArchiveTooLarge, http.StatusRequestEntityTooLarge)
				return
			}
			log.Err(err).Str("func", "*Handler.verifyHash").Msg("failed to read request body")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, hashFromRequest) {
			log.Err(ErrHashMismatch).Str("func", "*Handler.verifyHash").
				Str("hash from request", hashFromRequest).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// limitBody caps the request body at the archive size limit.
func (h *Handler) limitBody(w http.ResponseWriter, r *http.Request) io.ReadCloser {
	if h.maxArchiveSize <= 0 {
		return r.Body
	}
	return http.MaxBytesReader(w, r.Body, h.maxArchiveSize)
}
