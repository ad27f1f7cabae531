package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoSecretProvided is returned when a request carries neither a
	// password, a raw secret nor a completed key exchange session.
	ErrNoSecretProvided = errors.New("no password or key exchange session provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrKeyExchangeUnavailable = errors.New("key exchange is not available")
	ErrKeyExchangeOnServer    = errors.New("key exchange with server failed")
)
