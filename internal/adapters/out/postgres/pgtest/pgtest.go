// Package pgtest starts a disposable PostgreSQL container for integration tests
// and prepares the ordering schema through the embedded migrations.
package pgtest

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"ordering/internal/adapters/out/postgres/migrations"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database is a running test database with the schema applied.
type Database struct {
	Container *postgres.PostgresContainer
	DSN       string
	SQL       *sql.DB
	Gorm      *gorm.DB
}

// Start runs postgres:15-alpine, applies migrations and opens both connections.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	db := &Database{Container: container}

	db.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return db, err
	}

	db.SQL, err = sql.Open("postgres", db.DSN)
	if err != nil {
		return db, err
	}

	if _, err = migrations.Up(ctx, db.SQL, slog.New(slog.DiscardHandler)); err != nil {
		return db, err
	}

	db.Gorm, err = gorm.Open(gorm_postgres.Open(db.DSN), &gorm.Config{})
	return db, err
}

// Truncate removes all orders and their lines.
func (d *Database) Truncate() error {
	return d.Gorm.Exec("TRUNCATE TABLE orders, order_lines").Error
}

// Terminate closes the connections and stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d.SQL != nil {
		_ = d.SQL.Close()
	}
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
