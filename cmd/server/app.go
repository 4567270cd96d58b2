package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todolist-api/internal/config"
	"github.com/phrazzld/todolist-api/internal/platform/database"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/platform/sqlstore"
	"github.com/phrazzld/todolist-api/internal/service"
	"github.com/phrazzld/todolist-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	listStore  store.ListStore
	entryStore store.EntryStore

	todoService service.TodoService
}

// newApplication wires stores and services on top of an open database.
// The application takes ownership of db and closes it in cleanup.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB, dialect database.Dialect) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if db == nil {
		return nil, errors.New("database cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.listStore = sqlstore.NewListStore(db, dialect, logger)
	app.entryStore = sqlstore.NewEntryStore(db, dialect, logger)

	var err error
	app.todoService, err = service.NewTodoService(app.listStore, app.entryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo service: %w", err)
	}

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", slog.String("error", err.Error()))
		}
	}
}

// bootstrap loads configuration, sets up logging and opens the database.
// The caller owns the returned *sql.DB.
func bootstrap(ctx context.Context, configFile string) (*config.Config, *slog.Logger, *sql.DB, database.Dialect, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, "", fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, nil, "", fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver))

	db, dialect, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, nil, nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	return cfg, log, db, dialect, nil
}

// runServe is the serve command: bootstrap, optional migrations, then HTTP.
func runServe(ctx context.Context, configFile string) error {
	cfg, log, db, dialect, err := bootstrap(ctx, configFile)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, db, dialect, log); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(cfg, log, db, dialect)
	if err != nil {
		_ = db.Close()
		return err
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
