package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid. Several may be joined into one error.
var (
	// ErrInvalidAdapterConfigs indicates invalid remote server settings
	// (for example, missing address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application settings
	// (for example, a short token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidChannelConfigs indicates an unknown KDF, a KDF cost below
	// the floor, or an unsupported embedding density.
	ErrInvalidChannelConfigs = errors.New("invalid channel configuration")
	// ErrInvalidServerConfigs indicates missing listen addresses.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero sweep interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
