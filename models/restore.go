// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// RestoreMode selects how a snapshot is applied to the stored dataset.
type RestoreMode string

const (
	// RestorePreview computes the diff and applies nothing.
	RestorePreview RestoreMode = "preview"
	// RestoreReplace makes the stored dataset equal to the snapshot.
	RestoreReplace RestoreMode = "replace"
	// RestoreMerge inserts and updates snapshot records, never deletes.
	RestoreMerge RestoreMode = "merge"
)

// ParseRestoreMode converts s into a [RestoreMode]. An empty string selects
// [RestorePreview].
func ParseRestoreMode(s string) (RestoreMode, error) {
	switch RestoreMode(s) {
	case "":
		return RestorePreview, nil
	case RestorePreview, RestoreReplace, RestoreMerge:
		return RestoreMode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRestoreMode, s)
}

// Mutates reports whether m writes to storage.
func (m RestoreMode) Mutates() bool {
	return m == RestoreReplace || m == RestoreMerge
}

// TableDiff partitions the snapshot records of one table against the stored
// records of the same table.
type TableDiff struct {
	ToInsert  []Record
	ToUpdate  []Record
	Unchanged []Record
	// ToDelete is only filled in replace mode.
	ToDelete []Record
}

// Changed reports whether applying the diff would write anything.
func (d *TableDiff) Changed() bool {
	return len(d.ToInsert) > 0 || len(d.ToUpdate) > 0 || len(d.ToDelete) > 0
}

// RestoreDiff is the outcome of comparing a target dataset with the stored one.
type RestoreDiff struct {
	Mode   RestoreMode
	Tables map[Table]*TableDiff
}

// ComputeDiff partitions target against current, table by table.
// A target record is inserted when its id is unknown locally, updated when
// any field differs and unchanged otherwise. In replace mode every current
// record whose id is absent from target is scheduled for deletion.
func ComputeDiff(current, target Dataset, mode RestoreMode) RestoreDiff {
	diff := RestoreDiff{
		Mode:   mode,
		Tables: make(map[Table]*TableDiff, len(DependencyOrder)),
	}

	for _, t := range DependencyOrder {
		existing := make(map[string]Record, current.Count(t))
		for _, r := range current.Records(t) {
			existing[r.RecordID()] = r
		}

		td := &TableDiff{}
		wanted := make(map[string]struct{}, target.Count(t))
		for _, r := range target.Records(t) {
			wanted[r.RecordID()] = struct{}{}

			old, ok := existing[r.RecordID()]
			switch {
			case !ok:
				td.ToInsert = append(td.ToInsert, r)
			case !old.SameAs(r):
				td.ToUpdate = append(td.ToUpdate, r)
			default:
				td.Unchanged = append(td.Unchanged, r)
			}
		}

		if mode == RestoreReplace {
			for _, r := range current.Records(t) {
				if _, ok := wanted[r.RecordID()]; !ok {
					td.ToDelete = append(td.ToDelete, r)
				}
			}
		}

		diff.Tables[t] = td
	}

	return diff
}

// Empty reports whether applying the diff is a no-op.
func (d RestoreDiff) Empty() bool {
	for _, td := range d.Tables {
		if td.Changed() {
			return false
		}
	}
	return true
}

// Table returns the diff of table t, never nil.
func (d RestoreDiff) Table(t Table) *TableDiff {
	if td, ok := d.Tables[t]; ok {
		return td
	}
	return &TableDiff{}
}

// Summary renders the diff in dependency order for API responses.
func (d RestoreDiff) Summary() []TableDiffSummary {
	out := make([]TableDiffSummary, 0, len(DependencyOrder))
	for _, t := range DependencyOrder {
		td := d.Table(t)
		out = append(out, TableDiffSummary{
			Table:     t,
			ToInsert:  len(td.ToInsert),
			ToUpdate:  len(td.ToUpdate),
			Unchanged: len(td.Unchanged),
			ToDelete:  len(td.ToDelete),
			InsertIDs: recordIDs(td.ToInsert),
			UpdateIDs: recordIDs(td.ToUpdate),
			DeleteIDs: recordIDs(td.ToDelete),
		})
	}
	return out
}

// TableDiffSummary is the serializable form of a [TableDiff].
type TableDiffSummary struct {
	Table     Table    `json:"table"`
	ToInsert  int      `json:"to_insert"`
	ToUpdate  int      `json:"to_update"`
	Unchanged int      `json:"unchanged"`
	ToDelete  int      `json:"to_delete"`
	InsertIDs []string `json:"insert_ids,omitempty"`
	UpdateIDs []string `json:"update_ids,omitempty"`
	DeleteIDs []string `json:"delete_ids,omitempty"`
}

// RestoreResult is returned by every restore call, preview included.
type RestoreResult struct {
	Mode     RestoreMode        `json:"mode"`
	Success  bool               `json:"success"`
	Applied  bool               `json:"applied"`
	Imported map[Table]int      `json:"imported,omitempty"`
	Diff     []TableDiffSummary `json:"diff"`
}

func recordIDs(records []Record) []string {
	if len(records) == 0 {
		return nil
	}
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.RecordID())
	}
	return ids
}
