// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server runs the REST sync API, the gRPC health service and the background
// workers of one process.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT, then shuts everything
// down. Shutdown may also be called directly, e.g. from tests.
type Server interface {
	RunServer()
	Shutdown()
}
