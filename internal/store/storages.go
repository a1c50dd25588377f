// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
)

// Storages groups every server-side repository and remote store.
// Backups and Mirror are nil when the matching target is not configured.
type Storages struct {
	DB          *DB
	ChangeState ChangeStateRepository
	Datasets    DatasetRepository
	Entities    EntityRepository
	Backups     BackupStore
	Mirror      TabularMirror
}

// NewStorages connects the database, applies migrations and builds the
// remote stores:
//   - backups go to S3 when a bucket is configured, else to BackupDir;
//   - the mirror goes to S3 when S3.Mirror is set, else to MirrorDir.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &Storages{
		DB:          db,
		ChangeState: NewChangeStateRepository(db),
		Datasets:    NewDatasetRepository(db),
		Entities:    NewEntityRepository(db),
	}

	var bucket S3Store
	if cfg.S3.Enabled() {
		if bucket, err = NewS3Store(ctx, cfg.S3); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("s3 store: %w", err)
		}
		s.Backups = bucket
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("backups stored in s3")
	} else if cfg.Files.BackupDir != "" {
		files, fileErr := NewFileStore(cfg.Files.BackupDir)
		if fileErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("backup dir: %w", fileErr)
		}
		s.Backups = files
		log.Info().Str("dir", cfg.Files.BackupDir).Msg("backups stored in local directory")
	}

	switch {
	case bucket != nil && cfg.S3.Mirror:
		s.Mirror = NewCSVMirror(bucket)
	case cfg.Files.MirrorDir != "":
		files, fileErr := NewFileStore(cfg.Files.MirrorDir)
		if fileErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("mirror dir: %w", fileErr)
		}
		s.Mirror = NewCSVMirror(files)
	}

	return s, nil
}

func (s *Storages) Close() error {
	return s.DB.Close()
}

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	DB           *DB
	OfflineQueue OfflineMutationRepository
}

// NewClientStorages opens the local SQLite database at cfg.DB.DSN, creating
// the file if needed, and applies the client migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DB:           db,
		OfflineQueue: NewOfflineMutationRepository(db),
	}, nil
}

func (c *ClientStorages) Close() error {
	return c.DB.Close()
}
