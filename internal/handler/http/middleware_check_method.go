// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-expense-sync/internal/utils"
)

// CheckHTTPMethod returns the MethodNotAllowed handler of router.
//
// Chi answers 405 when a path matches but the method does not. Here the
// request is forwarded when the exact route pattern serves the method and
// answered with 404 otherwise, so callers cannot probe which methods a
// route has. Parameterised patterns never match the raw path and always
// get 404.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
