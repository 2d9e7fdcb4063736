// Command migrate applies the embedded PostgreSQL migrations of the ordering
// service using the ORDERS_DB_* settings.
package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"ordering/cmd"
	"ordering/internal/adapters/out/postgres/migrations"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("component", "migrate")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, config.DB.DSN(), logger); err != nil {
		logger.ErrorContext(ctx, "Migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn string, logger *slog.Logger) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := migrations.Up(ctx, db, logger)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Migrations complete", "applied", len(applied))
	return nil
}
