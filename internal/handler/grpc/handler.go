// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service for the notes
// server. The notes API itself is served over HTTP; the health service lets
// orchestrators probe whether the note store is reachable.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-notes-vault/internal/logger"
)

// NotesServiceName is the health service name reporting note store status.
const NotesServiceName = "notes.v1.Notes"

const defaultProbeInterval = 10 * time.Second

// Pinger checks that the note store is reachable. *store.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server
	pinger Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both the overall server and
// [NotesServiceName] start out NOT_SERVING until the first probe succeeds.
// A nil pinger reports SERVING unconditionally.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to srv.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
}

// Probe pings the note store once and updates the reported status.
func (h *Handler) Probe(ctx context.Context) {
	if h.pinger == nil {
		h.setStatus(healthpb.HealthCheckResponse_SERVING)
		return
	}

	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("note store ping failed")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Monitor probes immediately and then every interval until ctx is done.
func (h *Handler) Monitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	h.Probe(ctx)

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			h.Probe(ctx)
		}
	}
}

// Shutdown reports NOT_SERVING for every service and ignores later probes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(NotesServiceName, status)
}
