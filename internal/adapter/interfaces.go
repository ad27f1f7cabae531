// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// stego channel server from the CLI.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrGone] for an expired session, [ErrUnauthorized]
// for a rejected token).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stego-channel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the server.
type ServerAdapter interface {
	// BeginKeyExchange opens a session on the server and returns its id and
	// the server public key.
	BeginKeyExchange(ctx context.Context) (models.KeyExchangeBeginResponse, error)

	// CompleteKeyExchange sends the client public key and returns the
	// session token the server issued.
	CompleteKeyExchange(ctx context.Context, req models.KeyExchangeCompleteRequest) (models.KeyExchangeCompleteResponse, error)

	// Hide runs hide on the server. A non-empty token is sent as a bearer
	// token and selects the key exchange secret when req carries no password.
	Hide(ctx context.Context, req models.HideRequest, token string) (models.HideResponse, error)

	// Reveal runs reveal on the server; token works as in Hide.
	Reveal(ctx context.Context, req models.RevealRequest, token string) (models.RevealResponse, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
