package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-stego-channel/models"
	"github.com/golang-jwt/jwt/v5"
)

// sessionTokenSubject is the "sub" claim of every session token.
const sessionTokenSubject = "key-exchange"

// GenerateSessionToken creates a signed HMAC-SHA256 JWT naming a completed
// key exchange session.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - ID        (jti): the key exchange session ID
//   - Subject   (sub): always "key-exchange"
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("stego-channel", sessionID, 10*time.Minute, signKey)
func GenerateSessionToken(issuer, sessionID string, tokenDuration time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || sessionID == "" || tokenDuration == 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionTokenSubject,
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during singing session token: %w", err)
	}

	return models.SessionToken{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		SessionID:        sessionID,
	}, nil
}

// ValidateSessionToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification with HS256 only
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Session (jti) claim presence
//
// An expired token returns an error matching [jwt.ErrTokenExpired].
func ValidateSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.SessionToken, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.ID == "" {
		return models.SessionToken{}, models.ErrTokenWithoutSession
	}

	return models.SessionToken{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		SessionID:        claims.ID,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
