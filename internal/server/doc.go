// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the transport servers of the sync server.
//
// It starts the REST API, the gRPC health service and the background
// workers, and on SIGTERM, SIGINT or SIGQUIT marks health NOT_SERVING,
// drains HTTP requests, stops gRPC and waits for the workers.
package server
