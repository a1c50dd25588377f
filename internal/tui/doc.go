// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal status screen of the client.
//
// The screen shows server reachability, the change status, the last sync and
// archive, and the head of the offline queue. Hot keys replay the queue,
// trigger a (forced) sync and copy the last archive name to the clipboard.
// "v" toggles the build info window.
package tui
