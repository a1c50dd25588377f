// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-sync/models"
)

// timeNow stamps uploads on stores that do not report a creation time.
var timeNow = time.Now

// Object key prefixes shared by the S3 and directory stores.
const (
	backupPrefix = "backups"
	mirrorPrefix = "mirror"
)

func backupKey(userID, name string) string {
	return path.Join(backupPrefix, userID, name)
}

func backupUserPrefix(userID string) string {
	return path.Join(backupPrefix, userID) + "/"
}

func sheetKey(userID, sheet string) string {
	return path.Join(mirrorPrefix, userID, sheet+".csv")
}

// validateSegment rejects names that would escape their key prefix.
func validateSegment(kind, s string) error {
	if s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("%w: %s %q", ErrInvalidBackupName, kind, s)
	}
	return nil
}

// checkRef verifies that ref names a backup of ref.UserID.
func checkRef(ref models.FileRef) error {
	if err := validateSegment("user", ref.UserID); err != nil {
		return err
	}
	if err := validateSegment("name", ref.Name); err != nil {
		return err
	}
	if ref.Key != "" && ref.Key != backupKey(ref.UserID, ref.Name) {
		return fmt.Errorf("%w: %s", ErrForeignBackupRef, ref.Key)
	}
	return nil
}

// sortNewestFirst orders refs by creation time, then name, descending.
func sortNewestFirst(refs []models.FileRef) {
	sort.Slice(refs, func(i, j int) bool {
		if !refs[i].CreatedAt.Equal(refs[j].CreatedAt) {
			return refs[i].CreatedAt.After(refs[j].CreatedAt)
		}
		return refs[i].Name > refs[j].Name
	})
}
