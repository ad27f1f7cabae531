package keyexchange

import "errors"

var (
	ErrSessionAlreadyComplete = errors.New("key exchange session already complete")
	ErrSessionFailed          = errors.New("key exchange session failed")
	ErrInvalidTransition      = errors.New("invalid key exchange state transition")
	ErrInvalidRemoteKey       = errors.New("invalid remote public key")

	ErrSessionNotFound = errors.New("key exchange session not found")
	ErrSessionExpired  = errors.New("key exchange session expired")
)
