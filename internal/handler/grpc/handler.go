// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/service"
	"github.com/MKhiriev/go-stego-channel/internal/validators"
)

// Handler is the root gRPC transport handler.
//
// It serves the key exchange handshake and the standard health service. A
// handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	validator validators.Validator
	health    *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:  services,
		validator: validators.NewStegoValidator(),
		health:    health.NewServer(),
		logger:    logger,
	}
}

// Register attaches the key exchange and health services to s and marks
// both as serving.
func (h *Handler) Register(s *grpc.Server) {
	s.RegisterService(&keyExchangeServiceDesc, h)
	healthpb.RegisterHealthServer(s, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(KeyExchangeServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every health status to NOT_SERVING so that probes drain
// the instance before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// ServerOptions returns the options the gRPC server must be created with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging),
	}
}
