// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged server configuration can start a server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: http address and request timeout are required", ErrInvalidServerConfigs)
	}

	if cfg.Sync.Timeout <= 0 || cfg.Sync.RestoreTimeout <= 0 {
		return fmt.Errorf("%w: sync and restore timeouts must be positive", ErrInvalidSyncConfigs)
	}

	if cfg.Sync.MaxBackups < 0 || cfg.Sync.MaxArchiveSize <= 0 {
		return fmt.Errorf("%w: max backups must be >= 0 and max archive size > 0", ErrInvalidSyncConfigs)
	}

	s3 := cfg.Storage.S3
	if s3.Enabled() && s3.Region == "" {
		return fmt.Errorf("%w: s3 region is required with a bucket", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.AutoSyncInterval < 0 || cfg.Workers.AutoSyncBatch < 0 {
		return fmt.Errorf("%w: auto sync settings must not be negative", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Token == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
