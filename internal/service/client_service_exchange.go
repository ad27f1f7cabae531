package service

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-stego-channel/internal/adapter"
	"github.com/MKhiriev/go-stego-channel/internal/crypto"
	"github.com/MKhiriev/go-stego-channel/internal/keyexchange"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/models"
)

// ClientKeyExchangeService runs the client half of the handshake.
type ClientKeyExchangeService interface {
	// Exchange agrees on a secret with the server and returns it together
	// with the session token the server issued.
	Exchange(ctx context.Context) (models.KeyFile, error)
}

type clientKeyExchangeService struct {
	adapter    adapter.ServerAdapter
	newSession func() (*keyexchange.Session, error)

	logger *logger.Logger
}

func NewClientKeyExchangeService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientKeyExchangeService {
	return &clientKeyExchangeService{
		adapter:    serverAdapter,
		newSession: keyexchange.NewSession,
		logger:     logger,
	}
}

func (c *clientKeyExchangeService) Exchange(ctx context.Context) (models.KeyFile, error) {
	if c.adapter == nil {
		return models.KeyFile{}, ErrKeyExchangeUnavailable
	}
	log := logger.FromContext(ctx)

	begin, err := c.adapter.BeginKeyExchange(ctx)
	if err != nil {
		log.Err(err).Str("func", "clientKeyExchangeService.Exchange").Msg("error beginning key exchange on server")
		return models.KeyFile{}, fmt.Errorf("%w: %w", ErrKeyExchangeOnServer, err)
	}

	session, err := c.newSession()
	if err != nil {
		return models.KeyFile{}, err
	}
	pub, err := session.LocalPublicKey()
	if err != nil {
		return models.KeyFile{}, err
	}

	secret, err := session.Complete(begin.PublicKey)
	if err != nil {
		log.Err(err).Str("func", "clientKeyExchangeService.Exchange").Msg("error agreeing on secret")
		return models.KeyFile{}, err
	}
	defer crypto.Zero(secret)

	complete, err := c.adapter.CompleteKeyExchange(ctx, models.KeyExchangeCompleteRequest{
		SessionID: begin.SessionID,
		PublicKey: pub,
	})
	if err != nil {
		log.Err(err).Str("func", "clientKeyExchangeService.Exchange").Msg("error completing key exchange on server")
		return models.KeyFile{}, fmt.Errorf("%w: %w", ErrKeyExchangeOnServer, err)
	}

	log.Info().
		Str("func", "clientKeyExchangeService.Exchange").
		Str("session_id", complete.SessionID).
		Msg("key exchange completed")

	return models.KeyFile{
		SessionID: complete.SessionID,
		Secret:    hex.EncodeToString(secret),
		Token:     complete.Token,
		ExpiresAt: complete.ExpiresAt,
	}, nil
}
