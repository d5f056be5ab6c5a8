// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-notes-vault/internal/config"
	myGRPC "github.com/MKhiriev/go-notes-vault/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-notes-vault/internal/handler/http"
	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/internal/service"
)

const shutdownTimeout = 10 * time.Second

type transport interface {
	name() string
	// serve blocks until the transport stops. A graceful stop returns nil.
	serve() error
	shutdown(ctx context.Context) error
}

// Server owns the configured transports.
type Server struct {
	transports []transport
	logger     *logger.Logger
}

// New creates a transport per configured address. pinger backs the gRPC
// health service and may be nil.
func New(services *service.Services, pinger myGRPC.Pinger, cfg config.Server, log *logger.Logger) (*Server, error) {
	s := &Server{logger: log}

	if cfg.HTTPAddress != "" {
		handler := myHTTP.NewHandler(services, log)
		s.transports = append(s.transports, newHTTPServer(handler.Init(), cfg, log))
	}
	if cfg.GRPCAddress != "" {
		grpcSrv, err := newGRPCServer(myGRPC.NewHandler(pinger, log), cfg, log)
		if err != nil {
			return nil, err
		}
		s.transports = append(s.transports, grpcSrv)
	}

	if len(s.transports) == 0 {
		return nil, ErrNoTransports
	}

	return s, nil
}

// Run serves every transport until ctx is done or one of them fails. The
// first transport error is returned.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, t := range s.transports {
		g.Go(func() error {
			s.logger.Info().Str("transport", t.name()).Msg("starting")
			return t.serve()
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.shutdown()
		return nil
	})

	err := g.Wait()
	s.logger.Info().Msg("server stopped")
	return err
}

func (s *Server) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, t := range s.transports {
		if err := t.shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Str("transport", t.name()).Msg("shutdown")
		}
	}
}
