package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-notes-vault/internal/config"
	myGRPC "github.com/MKhiriev/go-notes-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-notes-vault/internal/logger"
)

type grpcServer struct {
	handler  *myGRPC.Handler
	server   *grpc.Server
	listener net.Listener
	interval time.Duration

	monitorCtx  context.Context
	stopMonitor context.CancelFunc
	logger      *logger.Logger
}

// newGRPCServer binds the listener immediately.
func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, log *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", cfg.GRPCAddress, err)
	}

	srv := grpc.NewServer()
	handler.Register(srv)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	return &grpcServer{
		handler:     handler,
		server:      srv,
		listener:    lis,
		interval:    cfg.HealthInterval,
		monitorCtx:  monitorCtx,
		stopMonitor: stopMonitor,
		logger:      log,
	}, nil
}

func (g *grpcServer) name() string { return "grpc" }

func (g *grpcServer) serve() error {
	go g.handler.Monitor(g.monitorCtx, g.interval)

	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")
	err := g.server.Serve(g.listener)
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}

func (g *grpcServer) shutdown(ctx context.Context) error {
	g.stopMonitor()
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
