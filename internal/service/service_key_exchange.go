package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-stego-channel/internal/config"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/utils"
	"github.com/MKhiriev/go-stego-channel/models"
)

// keyExchangeService runs the server side of the handshake and issues a
// session token naming the completed session.
type keyExchangeService struct {
	registry SecretRegistry

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim of every issued token.
	tokenIssuer string

	// sessionTTL is how long a session and its secret stay usable.
	sessionTTL time.Duration

	now func() time.Time

	logger *logger.Logger
}

func NewKeyExchangeService(registry SecretRegistry, cfg config.App, logger *logger.Logger) KeyExchangeService {
	return &keyExchangeService{
		registry:     registry,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		sessionTTL:   cfg.SessionTTL,
		now:          time.Now,
		logger:       logger,
	}
}

// Begin opens a session and returns the server public key for the peer.
func (k *keyExchangeService) Begin(ctx context.Context) (models.KeyExchangeBeginResponse, error) {
	log := logger.FromContext(ctx)

	session, pub, err := k.registry.Begin()
	if err != nil {
		log.Err(err).Str("func", "keyExchangeService.Begin").Msg("error opening key exchange session")
		return models.KeyExchangeBeginResponse{}, fmt.Errorf("error opening key exchange session: %w", err)
	}

	log.Debug().
		Str("func", "keyExchangeService.Begin").
		Str("session_id", session.ID()).
		Int("registry_size", k.registry.Len()).
		Msg("key exchange session opened")

	return models.KeyExchangeBeginResponse{
		SessionID: session.ID(),
		PublicKey: pub,
		ExpiresAt: k.now().Add(k.sessionTTL).UTC(),
	}, nil
}

// Complete agrees on the shared secret and signs a token for the session.
// The token authorizes exactly one hide or reveal.
func (k *keyExchangeService) Complete(ctx context.Context, req models.KeyExchangeCompleteRequest) (models.KeyExchangeCompleteResponse, error) {
	log := logger.FromContext(ctx)

	if err := k.registry.Complete(req.SessionID, req.PublicKey); err != nil {
		log.Err(err).
			Str("func", "keyExchangeService.Complete").
			Str("session_id", req.SessionID).
			Msg("error completing key exchange")
		return models.KeyExchangeCompleteResponse{}, err
	}

	token, err := utils.GenerateSessionToken(k.tokenIssuer, req.SessionID, k.sessionTTL, k.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "keyExchangeService.Complete").Msg("error signing session token")
		return models.KeyExchangeCompleteResponse{}, fmt.Errorf("error signing session token: %w", err)
	}

	log.Info().
		Str("func", "keyExchangeService.Complete").
		Str("session_id", req.SessionID).
		Msg("key exchange completed")

	return models.KeyExchangeCompleteResponse{
		SessionID: req.SessionID,
		Token:     token.SignedString,
		ExpiresAt: token.ExpiresAt.Time.UTC(),
	}, nil
}

// ParseToken validates a session token and returns its claims.
func (k *keyExchangeService) ParseToken(ctx context.Context, tokenString string) (models.SessionToken, error) {
	token, err := utils.ValidateSessionToken(tokenString, k.tokenSignKey, k.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		}
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}
