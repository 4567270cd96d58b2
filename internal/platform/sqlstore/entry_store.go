package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/platform/database"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/redact"
	"github.com/phrazzld/todolist-api/internal/store"
)

// EntryStore implements store.EntryStore using a SQL database.
type EntryStore struct {
	db      store.DBTX
	dialect database.Dialect
	logger  *slog.Logger
}

// NewEntryStore creates an EntryStore backed by a connection or transaction.
func NewEntryStore(db store.DBTX, dialect database.Dialect, logger *slog.Logger) *EntryStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &EntryStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "entry_store")),
	}
}

// Ensure EntryStore implements store.EntryStore interface
var _ store.EntryStore = (*EntryStore)(nil)

// Create implements store.EntryStore.Create
// A foreign key violation yields an error matching both store.ErrInvalidEntity
// and store.ErrListNotFound.
func (s *EntryStore) Create(ctx context.Context, entry *domain.Entry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Debug("entry validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("list_id", entry.ListID))
		return err
	}

	query := s.dialect.Rebind(`
		INSERT INTO entries (list_id, description)
		VALUES ($1, $2)
		RETURNING id
	`)

	err := s.db.QueryRowContext(ctx, query, entry.ListID, entry.Description).Scan(&entry.ID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			log.Debug("foreign key violation during entry creation",
				slog.Int64("list_id", entry.ListID))
			return fmt.Errorf("%w: %w: id %d", store.ErrInvalidEntity, store.ErrListNotFound, entry.ListID)
		}

		log.Error("failed to create entry",
			slog.String("error", redact.Error(err)),
			slog.Int64("list_id", entry.ListID))
		return store.NewStoreError("entry", "create", "failed to insert entry", database.MapError(err))
	}

	log.Info("entry created",
		slog.Int64("entry_id", entry.ID),
		slog.Int64("list_id", entry.ListID))
	return nil
}

// GetByID implements store.EntryStore.GetByID
func (s *EntryStore) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.dialect.Rebind(`SELECT id, list_id, description FROM entries WHERE id = $1`)

	var entry domain.Entry
	err := s.db.QueryRowContext(ctx, query, id).Scan(&entry.ID, &entry.ListID, &entry.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("entry not found", slog.Int64("entry_id", id))
			return nil, store.ErrEntryNotFound
		}
		log.Error("failed to get entry by ID",
			slog.String("error", redact.Error(err)),
			slog.Int64("entry_id", id))
		return nil, store.NewStoreError("entry", "get", "failed to query entry", database.MapError(err))
	}

	return &entry, nil
}

// GetAllByListID implements store.EntryStore.GetAllByListID
func (s *EntryStore) GetAllByListID(ctx context.Context, listID int64) ([]*domain.Entry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.dialect.Rebind(`
		SELECT id, list_id, description
		FROM entries
		WHERE list_id = $1
		ORDER BY id
	`)

	rows, err := s.db.QueryContext(ctx, query, listID)
	if err != nil {
		log.Error("failed to query entries",
			slog.String("error", redact.Error(err)),
			slog.Int64("list_id", listID))
		return nil, store.NewStoreError("entry", "get_all", "failed to query entries", database.MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	entries := []*domain.Entry{}
	for rows.Next() {
		var entry domain.Entry
		if err := rows.Scan(&entry.ID, &entry.ListID, &entry.Description); err != nil {
			log.Error("failed to scan entry row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("entry", "get_all", "failed to scan entry", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning entry rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("entry", "get_all", "failed to read entries", err)
	}

	log.Debug("found entries for list",
		slog.Int64("list_id", listID),
		slog.Int("count", len(entries)))
	return entries, nil
}

// Delete implements store.EntryStore.Delete
func (s *EntryStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, s.dialect.Rebind(`DELETE FROM entries WHERE id = $1`), id)
	if err != nil {
		log.Error("failed to delete entry",
			slog.String("error", redact.Error(err)),
			slog.Int64("entry_id", id))
		return store.NewStoreError("entry", "delete", "failed to delete entry", database.MapError(err))
	}

	if err := database.CheckRowsAffected(result, store.ErrEntryNotFound); err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			log.Debug("entry not found for delete", slog.Int64("entry_id", id))
			return err
		}
		return store.NewStoreError("entry", "delete", "failed to confirm delete", err)
	}

	log.Info("entry deleted", slog.Int64("entry_id", id))
	return nil
}
