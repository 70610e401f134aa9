package grpc

import (
	"context"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "skillswap/exchange-service/api/exchange/v1"
	"skillswap/exchange-service/internal/identity"
)

// Server is the gRPC listener with the chat service, health checks and, optionally,
// reflection registered.
type Server struct {
	srv    *grpc.Server
	health *health.Server
	logger *logrus.Logger
}

func NewServer(chat *ChatServer, validator *identity.Validator, reflectionEnabled bool, logger *logrus.Logger) *Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(validator.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(validator.StreamServerInterceptor()),
	)
	pb.RegisterChatServiceServer(srv, chat)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus(pb.ChatService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	if reflectionEnabled {
		reflection.Register(srv)
		logger.Info("gRPC reflection enabled")
	}

	return &Server{srv: srv, health: hs, logger: logger}
}

func (s *Server) Serve(lis net.Listener) error {
	s.logger.Infof("Starting gRPC server on %s", lis.Addr())
	return s.srv.Serve(lis)
}

// Shutdown stops accepting calls and waits up to timeout for running ones. Open watch
// streams are cut when the timeout passes.
func (s *Server) Shutdown(timeout time.Duration) {
	s.health.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("gRPC server exited gracefully")
	case <-ctx.Done():
		s.logger.Info("gRPC server shutdown timeout")
		s.srv.Stop()
	}
}
