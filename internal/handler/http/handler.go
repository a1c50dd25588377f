// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/service"
	"github.com/MKhiriev/go-expense-sync/internal/utils"
)

type Handler struct {
	services *service.Services

	tokenSignKey string
	tokenIssuer  string
	// hasher is nil when no hash key is configured.
	hasher         *utils.Hasher
	maxArchiveSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, syncCfg config.Sync, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		tokenSignKey:   appCfg.TokenSignKey,
		tokenIssuer:    appCfg.TokenIssuer,
		maxArchiveSize: syncCfg.MaxArchiveSize,
		logger:         logger,
	}
	if appCfg.HashKey != "" {
		h.hasher = utils.NewHasher(appCfg.HashKey)
	}

	logger.Info().Msg("http handler created")
	return h
}
