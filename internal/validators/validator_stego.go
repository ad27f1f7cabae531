package validators

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-stego-channel/internal/carrier"
	"github.com/MKhiriev/go-stego-channel/models"
)

// Field name constants restrict Validate to a subset of checks.
const (
	FieldKind          = "kind"
	FieldCarrier       = "carrier"
	FieldMessage       = "message"
	FieldBitsPerUnit   = "bits_per_unit"
	FieldMessageLength = "message_length"
	FieldFingerprint   = "expected_fingerprint"
	FieldSessionID     = "session_id"
	FieldPublicKey     = "public_key"
	FieldOperationType = "operation"
	FieldLimit         = "limit"
)

const (
	// MaxCarrierSize bounds an encoded carrier accepted over the API.
	MaxCarrierSize = 32 << 20
	// MaxMessageSize bounds a plaintext message.
	MaxMessageSize = 1 << 20
	// MaxHistoryLimit bounds a single history page.
	MaxHistoryLimit = 1000

	fingerprintHexLen = 32
)

// StegoValidator implements [Validator] for the channel request models.
// Both value and pointer forms of every model are accepted.
type StegoValidator struct{}

func NewStegoValidator() Validator {
	return &StegoValidator{}
}

// Validate dispatches on the dynamic type of obj. With no fields the
// default set for the type is checked.
//
// Supported types: models.HideRequest, models.RevealRequest,
// models.CapacityRequest, models.AnalyzeRequest,
// models.KeyExchangeCompleteRequest and models.HistoryFilter.
func (v *StegoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.HideRequest:
		return v.validateHideRequest(ctx, value, fields...)
	case *models.HideRequest:
		return v.validateHideRequest(ctx, *value, fields...)
	case models.RevealRequest:
		return v.validateRevealRequest(ctx, value, fields...)
	case *models.RevealRequest:
		return v.validateRevealRequest(ctx, *value, fields...)
	case models.CapacityRequest:
		return v.validateCapacityRequest(ctx, value, fields...)
	case *models.CapacityRequest:
		return v.validateCapacityRequest(ctx, *value, fields...)
	case models.AnalyzeRequest:
		return v.validateAnalyzeRequest(ctx, value, fields...)
	case *models.AnalyzeRequest:
		return v.validateAnalyzeRequest(ctx, *value, fields...)
	case models.KeyExchangeCompleteRequest:
		return v.validateKeyExchangeComplete(ctx, value, fields...)
	case *models.KeyExchangeCompleteRequest:
		return v.validateKeyExchangeComplete(ctx, *value, fields...)
	case models.HistoryFilter:
		return v.validateHistoryFilter(ctx, value, fields...)
	case *models.HistoryFilter:
		return v.validateHistoryFilter(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *StegoValidator) validateHideRequest(_ context.Context, req models.HideRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldCarrier, FieldMessage, FieldBitsPerUnit}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if err := validateKind(req.Kind); err != nil {
				return err
			}
		case FieldCarrier:
			if err := validateCarrier(req.Carrier); err != nil {
				return err
			}
		case FieldMessage:
			if req.Message == "" {
				return ErrEmptyMessage
			}
			if len(req.Message) > MaxMessageSize {
				return ErrMessageTooLarge
			}
		case FieldBitsPerUnit:
			if err := validateBitsPerUnit(req.BitsPerUnit); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StegoValidator) validateRevealRequest(_ context.Context, req models.RevealRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldCarrier, FieldBitsPerUnit, FieldFingerprint}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if err := validateKind(req.Kind); err != nil {
				return err
			}
		case FieldCarrier:
			if err := validateCarrier(req.Carrier); err != nil {
				return err
			}
		case FieldBitsPerUnit:
			if err := validateBitsPerUnit(req.BitsPerUnit); err != nil {
				return err
			}
		case FieldFingerprint:
			if req.ExpectedFingerprint == "" {
				continue
			}
			if len(req.ExpectedFingerprint) != fingerprintHexLen {
				return ErrInvalidFingerprint
			}
			if _, err := hex.DecodeString(req.ExpectedFingerprint); err != nil {
				return ErrInvalidFingerprint
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StegoValidator) validateCapacityRequest(_ context.Context, req models.CapacityRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldCarrier, FieldMessageLength, FieldBitsPerUnit}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if err := validateKind(req.Kind); err != nil {
				return err
			}
		case FieldCarrier:
			if err := validateCarrier(req.Carrier); err != nil {
				return err
			}
		case FieldMessageLength:
			if req.MessageLength < 0 || req.MessageLength > MaxMessageSize {
				return ErrInvalidMessageLength
			}
		case FieldBitsPerUnit:
			if err := validateBitsPerUnit(req.BitsPerUnit); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StegoValidator) validateAnalyzeRequest(_ context.Context, req models.AnalyzeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldCarrier}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if err := validateKind(req.Kind); err != nil {
				return err
			}
		case FieldCarrier:
			if err := validateCarrier(req.Carrier); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StegoValidator) validateKeyExchangeComplete(_ context.Context, req models.KeyExchangeCompleteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionID, FieldPublicKey}
	}

	for _, f := range fields {
		switch f {
		case FieldSessionID:
			if req.SessionID == "" {
				return ErrEmptySessionID
			}
		case FieldPublicKey:
			if len(req.PublicKey) == 0 {
				return ErrEmptyPublicKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StegoValidator) validateHistoryFilter(_ context.Context, filter models.HistoryFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperationType, FieldKind, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldOperationType:
			if filter.Type != "" && !filter.Type.Valid() {
				return ErrInvalidOperationType
			}
		case FieldKind:
			if filter.CarrierKind == "" {
				continue
			}
			if err := validateKind(filter.CarrierKind); err != nil {
				return err
			}
		case FieldLimit:
			if filter.Limit > MaxHistoryLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateKind(kind string) error {
	if _, err := carrier.ParseKind(kind); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	return nil
}

func validateCarrier(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyCarrier
	}
	if len(data) > MaxCarrierSize {
		return ErrCarrierTooLarge
	}
	return nil
}

func validateBitsPerUnit(bpu int) error {
	if bpu < 0 || bpu > carrier.MaxBitsPerUnit {
		return ErrInvalidBitsPerUnit
	}
	return nil
}
