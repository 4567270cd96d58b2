package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todolist-api/internal/platform/database"
)

// runMigrate is the migrate command: it runs one goose operation against the
// configured database.
func runMigrate(ctx context.Context, configFile, command string) error {
	_, log, db, dialect, err := bootstrap(ctx, configFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database connection", slog.String("error", err.Error()))
		}
	}()

	migrator, err := database.NewMigrator(db, dialect, log)
	if err != nil {
		return err
	}

	return migrator.Run(ctx, command)
}

// migrateUp applies pending migrations before the server starts.
func migrateUp(ctx context.Context, db *sql.DB, dialect database.Dialect, log *slog.Logger) error {
	migrator, err := database.NewMigrator(db, dialect, log)
	if err != nil {
		return err
	}

	if err := migrator.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
