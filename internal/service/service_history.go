package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/store"
	"github.com/MKhiriev/go-stego-channel/models"
)

type historyService struct {
	repository store.OperationRepository
	ids        KeyGenerator
	now        func() time.Time

	logger *logger.Logger
}

func NewHistoryService(repository store.OperationRepository, ids KeyGenerator, logger *logger.Logger) HistoryService {
	return &historyService{
		repository: repository,
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

func (h *historyService) Record(ctx context.Context, op models.Operation) error {
	if !op.Type.Valid() {
		return fmt.Errorf("%w: operation type %q", ErrInvalidDataProvided, op.Type)
	}
	if op.ID == "" {
		op.ID = h.ids.Generate()
	}
	if op.CreatedAt.IsZero() {
		op.CreatedAt = h.now()
	}
	op.CreatedAt = op.CreatedAt.UTC()

	if err := h.repository.Save(ctx, op); err != nil {
		return fmt.Errorf("error saving operation: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "historyService.Record").
		Str("operation_id", op.ID).
		Str("operation", string(op.Type)).
		Bool("success", op.Success).
		Msg("operation recorded")
	return nil
}

func (h *historyService) List(ctx context.Context, filter models.HistoryFilter) ([]models.Operation, error) {
	ops, err := h.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing operations: %w", err)
	}
	return ops, nil
}

func (h *historyService) Get(ctx context.Context, id string) (models.Operation, error) {
	if id == "" {
		return models.Operation{}, ErrInvalidDataProvided
	}
	return h.repository.Get(ctx, id)
}

func (h *historyService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidDataProvided
	}
	return h.repository.Delete(ctx, id)
}

func (h *historyService) Clear(ctx context.Context, filter models.HistoryFilter) (int64, error) {
	n, err := h.repository.Clear(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error clearing operations: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "historyService.Clear").
		Int64("deleted", n).
		Msg("history cleared")
	return n, nil
}
