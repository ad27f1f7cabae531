package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenWithoutSession is returned when a token carries no "jti" claim.
var ErrTokenWithoutSession = errors.New("token has no session id")

// SessionToken wraps a JWT that names a completed key exchange session.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for claim access; the session identifier travels as the "jti" claim.
type SessionToken struct {
	// Token is the underlying JWT. Only the compact form leaves the process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// SessionID is a cached copy of the "jti" claim.
	SessionID string `json:"-"`
}

// GetSessionID returns the "jti" claim.
func (t *SessionToken) GetSessionID() (string, error) {
	if t.ID == "" {
		return "", ErrTokenWithoutSession
	}
	return t.ID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *SessionToken) String() string {
	return t.SignedString
}
