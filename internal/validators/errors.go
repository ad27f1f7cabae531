package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidKind          = errors.New("invalid carrier kind")
	ErrEmptyCarrier         = errors.New("carrier is required")
	ErrCarrierTooLarge      = errors.New("carrier is too large")
	ErrEmptyMessage         = errors.New("message is required")
	ErrMessageTooLarge      = errors.New("message is too large")
	ErrInvalidBitsPerUnit   = errors.New("bits per unit must be between 0 and 2")
	ErrInvalidMessageLength = errors.New("invalid message length")
	ErrInvalidFingerprint   = errors.New("fingerprint must be 32 hex characters")
	ErrEmptySessionID       = errors.New("session id is required")
	ErrEmptyPublicKey       = errors.New("public key is required")
	ErrInvalidOperationType = errors.New("invalid operation type")
	ErrInvalidLimit         = errors.New("invalid history limit")
	ErrEmptyOperationID     = errors.New("operation id is required")
)
