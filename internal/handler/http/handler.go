package http

import (
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/service"
	"github.com/MKhiriev/go-stego-channel/internal/validators"
)

// DefaultMaxBodyBytes bounds a request body. A base64 carrier of
// validators.MaxCarrierSize fits with room for the other fields.
const DefaultMaxBodyBytes = 48 << 20

type Handler struct {
	services  *service.Services
	validator validators.Validator

	maxBodyBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		validator:    validators.NewStegoValidator(),
		maxBodyBytes: DefaultMaxBodyBytes,
		logger:       logger,
	}
}
