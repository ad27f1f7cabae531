package crypto

import "errors"

var (
	// ErrWeakParameters is returned when KDF parameters are below the
	// configured minimum.
	ErrWeakParameters = errors.New("weak key derivation parameters")

	// ErrAuthenticationFailed covers a wrong secret and a tampered frame
	// alike; the two cannot be told apart by design of the AEAD.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrMalformedFrame indicates structural corruption of a ciphertext frame.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrUnsupportedFormatVersion is returned for a structurally valid header
	// whose version byte is unknown. It does not match ErrMalformedFrame.
	ErrUnsupportedFormatVersion = errors.New("unsupported format version")

	ErrUnknownAlgorithm = errors.New("unknown key derivation algorithm")
)
