package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-stego-channel/internal/config"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/utils"
	"github.com/MKhiriev/go-stego-channel/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises cfg.HTTPAddress into a base URL, adding
// "http://" when no scheme is given.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BeginKeyExchange implements [ServerAdapter] via POST /api/key-exchange.
func (h *httpServerAdapter) BeginKeyExchange(ctx context.Context) (models.KeyExchangeBeginResponse, error) {
	var result models.KeyExchangeBeginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Post("/api/key-exchange")
	if err != nil {
		return models.KeyExchangeBeginResponse{}, fmt.Errorf("begin key exchange request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyExchangeBeginResponse{}, err
	}

	return result, nil
}

// CompleteKeyExchange implements [ServerAdapter] via
// POST /api/key-exchange/complete.
func (h *httpServerAdapter) CompleteKeyExchange(ctx context.Context, req models.KeyExchangeCompleteRequest) (models.KeyExchangeCompleteResponse, error) {
	var result models.KeyExchangeCompleteResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/key-exchange/complete")
	if err != nil {
		return models.KeyExchangeCompleteResponse{}, fmt.Errorf("complete key exchange request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyExchangeCompleteResponse{}, err
	}

	return result, nil
}

// Hide implements [ServerAdapter] via POST /api/stego/hide.
func (h *httpServerAdapter) Hide(ctx context.Context, req models.HideRequest, token string) (models.HideResponse, error) {
	var result models.HideResponse

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/stego/hide")
	if err != nil {
		return models.HideResponse{}, fmt.Errorf("hide request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HideResponse{}, err
	}

	return result, nil
}

// Reveal implements [ServerAdapter] via POST /api/stego/reveal.
func (h *httpServerAdapter) Reveal(ctx context.Context, req models.RevealRequest, token string) (models.RevealResponse, error) {
	var result models.RevealResponse

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/stego/reveal")
	if err != nil {
		return models.RevealResponse{}, fmt.Errorf("reveal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RevealResponse{}, err
	}

	return result, nil
}

// Version implements [ServerAdapter] via GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
