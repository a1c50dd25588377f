// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime and its cobra
// command tree.
//
// One-shot commands (status, sync, queue, backup, submit) open the offline
// queue, talk to the server once and exit. The watch command runs the
// background sync job together with the terminal status screen.
package client
