package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/models"
)

// operationRepository is the SQL implementation of [OperationRepository].
// It works unchanged on PostgreSQL and SQLite; the dialect of the embedded
// [*DB] only decides the placeholder format.
type operationRepository struct {
	*DB
	logger *logger.Logger
}

// NewOperationRepository constructs an [OperationRepository] backed by db.
func NewOperationRepository(db *DB, logger *logger.Logger) OperationRepository {
	return &operationRepository{
		DB:     db,
		logger: logger,
	}
}

func (o *operationRepository) Save(ctx context.Context, op models.Operation) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertOperation(o.statementBuilder(), op)
	if err != nil {
		log.Err(err).Str("func", "operationRepository.Save").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := o.exec(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "operationRepository.Save").
			Str("operation_id", op.ID).
			Msg("failed to insert operation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Error().
			Str("func", "operationRepository.Save").
			Str("operation_id", op.ID).
			Msg("insert affected no rows")
		return ErrOperationNotSaved
	}

	return nil
}

func (o *operationRepository) List(ctx context.Context, filter models.HistoryFilter) ([]models.Operation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOperations(o.statementBuilder(), filter)
	if err != nil {
		log.Err(err).Str("func", "operationRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = o.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = o.DB.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "operationRepository.List").Msg("failed to execute query for listing operations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Operation, 0, 16)
	for rows.Next() {
		op, scanErr := scanOperation(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "operationRepository.List").Msg("failed to scan operation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, op)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "operationRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (o *operationRepository) Get(ctx context.Context, id string) (models.Operation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetOperation(o.statementBuilder(), id)
	if err != nil {
		log.Err(err).Str("func", "operationRepository.Get").Msg("failed to create query")
		return models.Operation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var op models.Operation
	err = o.withRetry(ctx, func() error {
		var scanErr error
		op, scanErr = scanOperation(o.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Operation{}, ErrOperationNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "operationRepository.Get").
			Str("operation_id", id).
			Msg("failed to get operation")
		return models.Operation{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return op, nil
}

func (o *operationRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOperation(o.statementBuilder(), id)
	if err != nil {
		log.Err(err).Str("func", "operationRepository.Delete").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := o.exec(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "operationRepository.Delete").
			Str("operation_id", id).
			Msg("failed to delete operation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOperationNotFound
	}

	return nil
}

func (o *operationRepository) Clear(ctx context.Context, filter models.HistoryFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildClearOperations(o.statementBuilder(), filter)
	if err != nil {
		log.Err(err).Str("func", "operationRepository.Clear").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := o.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "operationRepository.Clear").Msg("failed to clear operations")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "operationRepository.Clear").Int64("deleted", affected).Msg("history cleared")
	return affected, nil
}

func (o *operationRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
	var result sql.Result
	err := o.withRetry(ctx, func() error {
		var execErr error
		result, execErr = o.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOperation(row rowScanner) (models.Operation, error) {
	var op models.Operation
	err := row.Scan(
		&op.ID,
		&op.Type,
		&op.CarrierKind,
		&op.Success,
		&op.MessageLength,
		&op.CarrierUnits,
		&op.BitsPerUnit,
		&op.DurationMS,
		&op.Fingerprint,
		&op.Error,
		&op.CreatedAt,
	)
	if err != nil {
		return models.Operation{}, err
	}
	op.CreatedAt = op.CreatedAt.UTC()
	return op, nil
}
