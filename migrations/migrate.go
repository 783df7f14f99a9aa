// Package migrations holds the embedded schema of the mirror database: the
// sync_status bookkeeping table and one table per mirrored entity, plus the
// child line tables hanging off invoices and absence requests.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations to the mirror database.
// Called on every start, before the first sync run.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("mirror schema migration error, setting dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("mirror schema migration error: %w", err)
	}

	return nil
}
