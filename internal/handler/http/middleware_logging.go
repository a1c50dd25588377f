// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
)

// maxLoggedErrorBody bounds the error body copied into the access log.
const maxLoggedErrorBody = 256

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.statusCode()

		event := log.Info()
		if status >= http.StatusBadRequest {
			body := lw.body
			if len(body) > maxLoggedErrorBody {
				body = body[:maxLoggedErrorBody]
			}
			event = log.Warn().Bytes("error_body", body)
		}

		event.
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
