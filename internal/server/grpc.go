package server

import (
	"errors"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-stego-channel/internal/config"
	myGRPC "github.com/MKhiriev/go-stego-channel/internal/handler/grpc"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, err
	}

	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
	_ = g.gRPCNetListener.Close()
}

// Addr returns the bound listen address.
func (g *grpcServer) Addr() string {
	return g.gRPCNetListener.Addr().String()
}
