// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, session token generation and
// validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key under which the session middleware stores the
// key exchange session named by a verified bearer token.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionIDCtxKey, sessionID)
var SessionIDCtxKey = contextKey("sessionID")

// GetSessionIDFromContext retrieves the key exchange session identifier
// from the context.
//
// Returns the session ID and an ok flag:
//   - ok == true: a non-empty string value is present
//   - ok == false: value is missing, empty or has an unexpected type
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}

// WithSessionID returns a copy of ctx carrying sessionID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}
