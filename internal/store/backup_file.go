// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-expense-sync/models"
)

// fileStore keeps archives and mirror sheets in a local directory, using
// the same key layout as the S3 store. Files are written to a temporary
// name and renamed into place, so a reader never sees a partial archive.
type fileStore struct {
	root string
}

// FileStore is a directory-backed [BackupStore] and [SheetSink].
type FileStore interface {
	BackupStore
	SheetSink
}

func NewFileStore(root string) (FileStore, error) {
	if root == "" {
		return nil, errors.New("file store root is empty")
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrRemoteUnavailable, root, err)
	}
	return &fileStore{root: root}, nil
}

func (f *fileStore) Upload(ctx context.Context, userID, name string, data []byte) (models.FileRef, error) {
	ref := models.FileRef{Key: backupKey(userID, name), UserID: userID, Name: name}
	if err := checkRef(ref); err != nil {
		return models.FileRef{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.FileRef{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	full := f.path(ref.Key)
	if err := writeFileAtomic(full, data); err != nil {
		return models.FileRef{}, err
	}

	info, err := os.Stat(full)
	if err != nil {
		return models.FileRef{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	ref.Size = info.Size()
	ref.CreatedAt = models.NormalizeTime(info.ModTime())

	return ref, nil
}

func (f *fileStore) List(ctx context.Context, userID string) ([]models.FileRef, error) {
	if err := validateSegment("user", userID); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(f.path(backupUserPrefix(userID)))
	if errors.Is(err, fs.ErrNotExist) {
		return []models.FileRef{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	refs := make([]models.FileRef, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || isTempFile(entry.Name()) {
			continue
		}
		info, infoErr := entry.Info()
		if infoErr != nil {
			continue
		}
		refs = append(refs, models.FileRef{
			Key:       backupKey(userID, entry.Name()),
			UserID:    userID,
			Name:      entry.Name(),
			Size:      info.Size(),
			CreatedAt: models.NormalizeTime(info.ModTime()),
		})
	}
	sortNewestFirst(refs)

	return refs, nil
}

func (f *fileStore) Fetch(ctx context.Context, ref models.FileRef) ([]byte, error) {
	if err := checkRef(ref); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path(backupKey(ref.UserID, ref.Name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrBackupNotFound, ref.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	return data, nil
}

func (f *fileStore) Delete(ctx context.Context, ref models.FileRef) error {
	if err := checkRef(ref); err != nil {
		return err
	}

	err := os.Remove(f.path(backupKey(ref.UserID, ref.Name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	return nil
}

func (f *fileStore) PutSheet(ctx context.Context, userID, sheet string, data []byte) error {
	if err := validateSegment("user", userID); err != nil {
		return err
	}
	if err := validateSegment("sheet", sheet); err != nil {
		return err
	}
	return writeFileAtomic(f.path(sheetKey(userID, sheet)), data)
}

func (f *fileStore) path(key string) string {
	return filepath.Join(f.root, filepath.FromSlash(key))
}

const tempFilePattern = ".tmp-*"

func isTempFile(name string) bool {
	matched, _ := filepath.Match(tempFilePattern, name)
	return matched
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	return nil
}
