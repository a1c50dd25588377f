// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ChangeState is the per-user pair of timestamps that decides whether a
// remote synchronization is needed. A nil timestamp means "never recorded".
type ChangeState struct {
	UserID             string     `json:"user_id"`
	LastDataChangeDate *time.Time `json:"last_data_change_date,omitempty"`
	LastSyncDate       *time.Time `json:"last_sync_date,omitempty"`
}

// ChangeStatus is the read-only projection of a [ChangeState] returned to
// callers of the status endpoint.
type ChangeStatus struct {
	HasChangesSinceLastSync bool       `json:"has_changes_since_last_sync"`
	LastDataChangeDate      *time.Time `json:"last_data_change_date"`
	LastSyncDate            *time.Time `json:"last_sync_date"`
}

// HasChanges reports whether state needs a sync. It fails open: a missing
// sync date or a missing change date both count as changes.
func HasChanges(state ChangeState) bool {
	if state.LastSyncDate == nil || state.LastDataChangeDate == nil {
		return true
	}
	return state.LastDataChangeDate.After(*state.LastSyncDate)
}

// MarkChanged returns a copy of s with the data change date set to now.
func (s ChangeState) MarkChanged(now time.Time) ChangeState {
	t := NormalizeTime(now)
	s.LastDataChangeDate = &t
	return s
}

// MarkSynced returns a copy of s with the sync date set to at.
func (s ChangeState) MarkSynced(at time.Time) ChangeState {
	t := NormalizeTime(at)
	s.LastSyncDate = &t
	return s
}

// Status projects s into a [ChangeStatus].
func (s ChangeState) Status() ChangeStatus {
	return ChangeStatus{
		HasChangesSinceLastSync: HasChanges(s),
		LastDataChangeDate:      s.LastDataChangeDate,
		LastSyncDate:            s.LastSyncDate,
	}
}
