package models

import "time"

// KeyExchangeBeginResponse is the server half of a handshake: the session
// to complete and the server's uncompressed P-256 public key.
type KeyExchangeBeginResponse struct {
	SessionID string    `json:"session_id"`
	PublicKey []byte    `json:"public_key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// KeyExchangeCompleteRequest delivers the client's public key.
type KeyExchangeCompleteRequest struct {
	SessionID string `json:"session_id"`
	PublicKey []byte `json:"public_key"`
}

// KeyExchangeCompleteResponse carries the session token that lets one
// subsequent hide or reveal use the derived secret.
type KeyExchangeCompleteResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// KeyFile is what the CLI stores after a completed exchange. Secret is the
// hex-encoded shared secret; Token lets one remote hide or reveal use the
// server's copy of it.
type KeyFile struct {
	SessionID string    `json:"session_id"`
	Secret    string    `json:"secret"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
