// Package migrations embeds the schema of the operation history and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Dialects accepted by [Migrate].
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var errNilDB = errors.New("migration error: db is nil")

// Migrate applies every pending migration to db using the goose dialect
// matching its driver.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
