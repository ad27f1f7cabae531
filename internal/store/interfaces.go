package store

import (
	"context"

	"github.com/MKhiriev/go-stego-channel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=ErrorClassificator

// OperationRepository persists the hide/reveal history.
type OperationRepository interface {
	// Save inserts op. op.ID and op.CreatedAt must be set.
	Save(ctx context.Context, op models.Operation) error

	// List returns records matching filter, newest first.
	List(ctx context.Context, filter models.HistoryFilter) ([]models.Operation, error)

	// Get returns the record with id or [ErrOperationNotFound].
	Get(ctx context.Context, id string) (models.Operation, error)

	// Delete removes the record with id or returns [ErrOperationNotFound].
	Delete(ctx context.Context, id string) error

	// Clear removes every record matching filter (Limit and Offset are
	// ignored) and reports how many rows went away.
	Clear(ctx context.Context, filter models.HistoryFilter) (int64, error)
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
