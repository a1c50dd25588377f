// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/models"
)

type appInfoService struct {
	info models.ServerInfo

	logger *logger.Logger
}

// NewAppInfoService fixes the server info at startup. targets lists the
// remote stores that are configured; sealed tells whether new archives are
// encrypted.
func NewAppInfoService(cfg config.App, sealed bool, targets []models.SyncTarget, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	if targets == nil {
		targets = []models.SyncTarget{}
	}

	return &appInfoService{
		info: models.ServerInfo{
			Version:               cfg.Version,
			SnapshotFormatVersion: models.SnapshotFormatVersion,
			SealedBackups:         sealed,
			Targets:               slices.Clone(targets),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetServerInfo(ctx context.Context) models.ServerInfo {
	info := s.info
	info.Targets = slices.Clone(s.info.Targets)
	return info
}
