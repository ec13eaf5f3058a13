// Package grpc hosts the optional gRPC health endpoint used by orchestrators
// to probe the site process.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer serves the standard grpc.health.v1 service on its own listener.
type HealthServer struct {
	listener net.Listener
	server   *gogrpc.Server
	health   *health.Server
}

// NewHealthServer registers a health service on a fresh gRPC server bound to
// listener. The overall ("") status starts as SERVING.
func NewHealthServer(listener net.Listener) (*HealthServer, error) {
	if listener == nil {
		return nil, errors.New("health listener is required")
	}
	server := gogrpc.NewServer(gogrpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	return &HealthServer{listener: listener, server: server, health: healthServer}, nil
}

// Addr reports the bound listener address.
func (s *HealthServer) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// SetServing flips one named service between SERVING and NOT_SERVING.
func (s *HealthServer) SetServing(service string, serving bool) {
	if s == nil {
		return
	}
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(service, status)
}

// Serve blocks until ctx ends, then drains in-flight probes for at most
// shutdownTimeout before forcing the server closed.
func (s *HealthServer) Serve(ctx context.Context, shutdownTimeout time.Duration) error {
	if s == nil {
		return errors.New("health server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.server.Serve(s.listener)
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, gogrpc.ErrServerStopped) {
			return fmt.Errorf("serve grpc health: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.health.Shutdown()
	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		s.server.Stop()
	}
	return nil
}

// Close stops the server and releases its listener.
func (s *HealthServer) Close() {
	if s == nil {
		return
	}
	s.server.Stop()
	_ = s.listener.Close()
}
