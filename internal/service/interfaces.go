package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stego-channel/internal/keyexchange"
	"github.com/MKhiriev/go-stego-channel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// StegoService runs the channel over encoded media.
type StegoService interface {
	Hide(ctx context.Context, req models.HideRequest) (models.HideResponse, error)
	Reveal(ctx context.Context, req models.RevealRequest) (models.RevealResponse, error)
	Capacity(ctx context.Context, req models.CapacityRequest) (models.CapacityResponse, error)
	Analyze(ctx context.Context, req models.AnalyzeRequest) (models.AnalyzeResponse, error)
}

// HistoryService keeps the audit trail of hide and reveal calls.
type HistoryService interface {
	// Record assigns an id and a creation time when missing and stores op.
	Record(ctx context.Context, op models.Operation) error
	List(ctx context.Context, filter models.HistoryFilter) ([]models.Operation, error)
	Get(ctx context.Context, id string) (models.Operation, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context, filter models.HistoryFilter) (int64, error)
}

// KeyExchangeService is the server half of the ECDH handshake.
type KeyExchangeService interface {
	Begin(ctx context.Context) (models.KeyExchangeBeginResponse, error)
	Complete(ctx context.Context, req models.KeyExchangeCompleteRequest) (models.KeyExchangeCompleteResponse, error)
	ParseToken(ctx context.Context, tokenString string) (models.SessionToken, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SecretRegistry holds pending sessions and derived secrets.
// [*keyexchange.Registry] implements it.
type SecretRegistry interface {
	Begin() (*keyexchange.Session, []byte, error)
	Complete(id string, remote []byte) error
	Take(id string) ([]byte, error)
	Sweep(now time.Time) int
	Len() int
}

// KeyGenerator provides record identifiers.
type KeyGenerator interface {
	Generate() string
}
