package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stego-channel/internal/config"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/migrations"
)

// defaultRetryDelays are the pauses between attempts of a statement that
// failed with a retryable error.
var defaultRetryDelays = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond}

// DB is a database handle bound to one dialect.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	retryDelays        []time.Duration
	logger             *logger.Logger
}

// NewConnect opens the history database named by cfg.DSN: a postgres://,
// postgresql:// or key=value DSN selects PostgreSQL, anything else is a
// SQLite file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case cfg.DSN == "":
		return nil, ErrUnsupportedDSN
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// Migrate applies the embedded schema with the dialect of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect of db.
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) statementBuilder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// withRetry runs fn until it succeeds, fails with a non-retryable error or
// the retry delays are used up.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	err := fn()
	for _, delay := range db.retryDelays {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retrying statement")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}
		err = fn()
	}
	return err
}
