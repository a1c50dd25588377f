// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST surface of the sync server.
//
// Routes are served by chi. Every /sync and /mutations route requires a
// bearer JWT whose subject is the user id; bodies of state-changing POSTs
// are checked against the Hash header when a hash key is configured.
// Service errors are mapped onto statuses and {"error": "..."} bodies by
// writeServiceError.
package http
