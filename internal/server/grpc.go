package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-secure-profile/internal/config"
	myGRPC "github.com/MKhiriev/go-secure-profile/internal/handler/grpc"
	"github.com/MKhiriev/go-secure-profile/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

// RunServer listens on the configured address and reports SERVING through
// the health service once the listener is open.
func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server Listen: %w", err)
	}

	g.handler.SetServing()
	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")

	if err = g.server.Serve(listener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
