package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/phrazzld/todolist-api/internal/config"
	"github.com/phrazzld/todolist-api/internal/platform/database"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// PostgresURLEnv names the environment variable holding the integration database URL.
const PostgresURLEnv = "TODO_TEST_DATABASE_URL"

// SQLite opens a new in-memory SQLite database with all migrations applied.
// The database is closed when the test finishes.
func SQLite(t *testing.T) *sql.DB {
	t.Helper()
	return open(t, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    ":memory:",
	})
}

// Postgres connects to the integration database and applies all migrations.
// The test is skipped when TODO_TEST_DATABASE_URL is not set.
func Postgres(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(PostgresURLEnv)
	if url == "" {
		t.Skipf("%s not set - skipping PostgreSQL integration test", PostgresURLEnv)
	}

	return open(t, config.DatabaseConfig{
		Driver:          config.DriverPostgres,
		URL:             url,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
}

func open(t *testing.T, cfg config.DatabaseConfig) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, dialect, err := database.Open(ctx, cfg, nil)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	migrator, err := database.NewMigrator(db, dialect, nil)
	require.NoError(t, err, "Failed to create migrator")
	require.NoError(t, migrator.Up(ctx), "Failed to run migrations")

	return db
}

// WithTx executes fn within a transaction that is rolled back afterwards,
// so the test leaves no data behind.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Errorf("Failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
