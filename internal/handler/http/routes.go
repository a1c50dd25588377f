// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/ping", h.ping)
		r.Get("/version", h.getServerVersion)
		r.Get("/info", h.getServerInfo)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.verifyHash).Post("/mutations", h.applyMutation)

		r.Get("/sync/status", h.syncStatus)
		r.With(h.verifyHash).Post("/sync", h.triggerSync)
		r.With(h.verifyHash).Post("/sync/upload", h.uploadBackup)
		r.Get("/sync/download", h.downloadBackup)
		r.Get("/sync/backups", h.listBackups)
		r.Post("/sync/backups/{name}/restore", h.restoreStoredBackup)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
