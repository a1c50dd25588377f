// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")

	// ErrDuplicate is returned for a create the server already applied.
	ErrDuplicate = errors.New("record already exists on server")

	// ErrNetworkUnavailable is returned when the server cannot be reached or
	// answers with a gateway error. Writes are queued on this error.
	ErrNetworkUnavailable = errors.New("server unreachable")
)
