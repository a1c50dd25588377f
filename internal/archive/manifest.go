// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package archive

import (
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-sync/models"
)

// Format identifies expense snapshot archives.
const Format = "expense-sync-snapshot"

const (
	manifestEntry = "manifest.json"
	tablesDir     = "tables"
	tableExt      = ".json"
)

// Manifest describes the content of an archive.
type Manifest struct {
	Format     string       `json:"format"`
	Version    int          `json:"version"`
	UserID     string       `json:"user_id"`
	ExportedAt time.Time    `json:"exported_at"`
	Tables     []TableEntry `json:"tables"`
}

// TableEntry is the manifest line of one table document.
type TableEntry struct {
	Name   models.Table `json:"name"`
	Rows   int          `json:"rows"`
	SHA256 string       `json:"sha256"`
}

func tableEntryName(t models.Table) string {
	return path.Join(tablesDir, string(t)+tableExt)
}

// tableFromEntryName returns the table a tar entry name refers to.
func tableFromEntryName(name string) (string, bool) {
	dir, file := path.Split(name)
	if dir != tablesDir+"/" || !strings.HasSuffix(file, tableExt) {
		return "", false
	}
	return strings.TrimSuffix(file, tableExt), true
}
