// Package migrations embeds the SQL schema of the ordering database and applies
// it through database/sql. Applied versions are recorded in schema_migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"
)

//go:embed sql/*.sql
var files embed.FS

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    varchar(255) PRIMARY KEY,
	applied_at timestamptz NOT NULL DEFAULT now()
)`

// Migration is one embedded schema change.
type Migration struct {
	Version string
	SQL     string
}

// List returns the embedded migrations sorted by version.
func List() ([]Migration, error) {
	names, err := fs.Glob(files, "sql/*.sql")
	if err != nil {
		return nil, err
	}
	slices.Sort(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		body, readErr := fs.ReadFile(files, name)
		if readErr != nil {
			return nil, readErr
		}

		migrations = append(migrations, Migration{
			Version: strings.TrimSuffix(strings.TrimPrefix(name, "sql/"), ".sql"),
			SQL:     string(body),
		})
	}

	return migrations, nil
}

// Up applies every migration not yet recorded, each in its own transaction.
// It returns the versions applied by this call.
func Up(ctx context.Context, db *sql.DB, logger *slog.Logger) ([]string, error) {
	if _, err := db.ExecContext(ctx, createVersionsTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	migrations, err := List()
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0)
	for _, m := range migrations {
		done, applyErr := apply(ctx, db, m)
		if applyErr != nil {
			return applied, fmt.Errorf("apply migration %s: %w", m.Version, applyErr)
		}
		if done {
			logger.InfoContext(ctx, "Migration applied", "version", m.Version)
			applied = append(applied, m.Version)
		}
	}

	return applied, nil
}

func apply(ctx context.Context, db *sql.DB, m Migration) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var exists bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", m.Version,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if _, err = tx.ExecContext(ctx, m.SQL); err != nil {
		return false, err
	}

	if _, err = tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", m.Version); err != nil {
		return false, err
	}

	return true, tx.Commit()
}
