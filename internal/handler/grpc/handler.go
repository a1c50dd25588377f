// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1 service of the sync
// server. Load balancers and the client probe it instead of the REST API.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
)

// ServiceName is the health service name of the sync API.
const ServiceName = "expensesync.Sync"

// Handler is the root gRPC transport handler.
//
// It owns the health server. Its status follows the HTTP server: SERVING
// while the REST API accepts requests, NOT_SERVING during shutdown.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a Handler whose services start as NOT_SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing updates the status of the overall server and of [ServiceName].
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Debug().Str("status", status.String()).Msg("health status updated")
}

// Shutdown marks every service NOT_SERVING permanently.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
