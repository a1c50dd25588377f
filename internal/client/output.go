// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-sync/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const timeLayout = time.RFC3339

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// output prints v as JSON with --json and calls text otherwise.
func (o *RootOptions) output(w io.Writer, v any, text func(w io.Writer) error) error {
	if o.JSON {
		return writeJSON(w, v)
	}
	return text(w)
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.UTC().Format(timeLayout)
}

func writeSyncResult(w io.Writer, result models.SyncResult) error {
	switch {
	case result.Skipped:
		_, err := fmt.Fprintln(w, "nothing changed since the last sync, skipped")
		return err
	case result.Deferred:
		_, err := fmt.Fprintln(w, "a remote store is unavailable, sync deferred to the next run")
		return err
	}

	if result.Synced {
		fmt.Fprintf(w, "synced %d records in %dms\n", result.Records, result.ElapsedMs)
	} else {
		fmt.Fprintln(w, "sync failed")
	}
	for _, t := range result.Targets {
		if t.OK {
			fmt.Fprintf(w, "  %s: ok\n", t.Target)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", t.Target, t.Error)
	}
	if result.Backup != nil {
		fmt.Fprintf(w, "backup: %s\n", result.Backup.Name)
	}
	return nil
}

func writeRestoreResult(w io.Writer, result models.RestoreResult) error {
	state := "preview, nothing written"
	if result.Applied {
		state = "applied"
	}
	fmt.Fprintf(w, "restore (%s): %s\n", result.Mode, state)

	if len(result.Diff) > 0 {
		rows := make([][]string, 0, len(result.Diff))
		for _, d := range result.Diff {
			rows = append(rows, []string{
				string(d.Table),
				fmt.Sprint(d.ToInsert),
				fmt.Sprint(d.ToUpdate),
				fmt.Sprint(d.Unchanged),
				fmt.Sprint(d.ToDelete),
			})
		}
		fmt.Fprintln(w, renderTable([]string{"TABLE", "INSERT", "UPDATE", "UNCHANGED", "DELETE"}, rows))
	}

	if len(result.Imported) > 0 {
		tables := make([]string, 0, len(result.Imported))
		for t := range result.Imported {
			tables = append(tables, string(t))
		}
		sort.Strings(tables)

		parts := make([]string, 0, len(tables))
		for _, t := range tables {
			parts = append(parts, fmt.Sprintf("%s=%d", t, result.Imported[models.Table(t)]))
		}
		fmt.Fprintf(w, "imported: %s\n", strings.Join(parts, " "))
	}
	return nil
}
