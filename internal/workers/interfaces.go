// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the sync server.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] runs a
// set of them side by side and waits for all of them to return.
package workers

import "context"

// Worker is a long-running background job.
//
// Run must return once ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
