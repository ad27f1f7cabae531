package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stego-channel/internal/validators"
	"github.com/MKhiriev/go-stego-channel/models"
)

// StegoServiceWrapper decorates a StegoService, e.g. with validation.
type StegoServiceWrapper interface {
	Wrap(StegoService) StegoService
}

// StegoValidationService rejects malformed requests before they reach the
// wrapped [StegoService]. Every validation failure matches
// [ErrInvalidDataProvided].
type StegoValidationService struct {
	inner     StegoService
	validator validators.Validator
}

func NewStegoValidationService() StegoServiceWrapper {
	return &StegoValidationService{
		validator: validators.NewStegoValidator(),
	}
}

func (v *StegoValidationService) Hide(ctx context.Context, req models.HideRequest) (models.HideResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.HideResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Hide(ctx, req)
}

func (v *StegoValidationService) Reveal(ctx context.Context, req models.RevealRequest) (models.RevealResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.RevealResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Reveal(ctx, req)
}

func (v *StegoValidationService) Capacity(ctx context.Context, req models.CapacityRequest) (models.CapacityResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.CapacityResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Capacity(ctx, req)
}

func (v *StegoValidationService) Analyze(ctx context.Context, req models.AnalyzeRequest) (models.AnalyzeResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AnalyzeResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Analyze(ctx, req)
}

func (v *StegoValidationService) Wrap(wrapped StegoService) StegoService {
	v.inner = wrapped
	return v
}
