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

// ListStore implements store.ListStore using a SQL database.
type ListStore struct {
	db      store.DBTX
	dialect database.Dialect
	logger  *slog.Logger
}

// NewListStore creates a ListStore. db may be a *sql.DB or a *sql.Tx; when it
// is a *sql.DB, Delete runs in its own transaction. If logger is nil, the
// default logger is used.
func NewListStore(db store.DBTX, dialect database.Dialect, logger *slog.Logger) *ListStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ListStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "list_store")),
	}
}

// Ensure ListStore implements store.ListStore interface
var _ store.ListStore = (*ListStore)(nil)

// Create implements store.ListStore.Create
func (s *ListStore) Create(ctx context.Context, list *domain.List) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := list.Validate(); err != nil {
		log.Debug("list validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := s.dialect.Rebind(`INSERT INTO lists (name) VALUES ($1) RETURNING id`)

	if err := s.db.QueryRowContext(ctx, query, list.Name).Scan(&list.ID); err != nil {
		if database.IsUniqueViolation(err) {
			log.Debug("list name already taken", slog.String("name", list.Name))
			return fmt.Errorf("%w: %q", store.ErrListNameExists, list.Name)
		}

		log.Error("failed to create list", slog.String("error", redact.Error(err)))
		return store.NewStoreError("list", "create", "failed to insert list", database.MapError(err))
	}

	log.Info("list created", slog.Int64("list_id", list.ID))
	return nil
}

// GetByID implements store.ListStore.GetByID
func (s *ListStore) GetByID(ctx context.Context, id int64) (*domain.List, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.dialect.Rebind(`SELECT id, name FROM lists WHERE id = $1`)

	var list domain.List
	err := s.db.QueryRowContext(ctx, query, id).Scan(&list.ID, &list.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("list not found", slog.Int64("list_id", id))
			return nil, store.ErrListNotFound
		}
		log.Error("failed to get list by ID",
			slog.String("error", redact.Error(err)),
			slog.Int64("list_id", id))
		return nil, store.NewStoreError("list", "get", "failed to query list", database.MapError(err))
	}

	return &list, nil
}

// GetAll implements store.ListStore.GetAll
func (s *ListStore) GetAll(ctx context.Context) ([]*domain.List, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM lists ORDER BY id`)
	if err != nil {
		log.Error("failed to query lists", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("list", "get_all", "failed to query lists", database.MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	lists := []*domain.List{}
	for rows.Next() {
		var list domain.List
		if err := rows.Scan(&list.ID, &list.Name); err != nil {
			log.Error("failed to scan list row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("list", "get_all", "failed to scan list", err)
		}
		lists = append(lists, &list)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning list rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("list", "get_all", "failed to read lists", err)
	}

	return lists, nil
}

// Delete implements store.ListStore.Delete
// Entries are removed explicitly before the list so the cascade does not
// depend on the engine enforcing foreign keys.
func (s *ListStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var err error
	if db, ok := s.db.(*sql.DB); ok {
		err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			return s.deleteWith(ctx, tx, id)
		})
	} else {
		err = s.deleteWith(ctx, s.db, id)
	}

	if err != nil {
		if errors.Is(err, store.ErrListNotFound) {
			log.Debug("list not found for delete", slog.Int64("list_id", id))
			return store.ErrListNotFound
		}
		log.Error("failed to delete list",
			slog.String("error", redact.Error(err)),
			slog.Int64("list_id", id))
		return store.NewStoreError("list", "delete", "failed to delete list", database.MapError(err))
	}

	log.Info("list deleted", slog.Int64("list_id", id))
	return nil
}

func (s *ListStore) deleteWith(ctx context.Context, q store.DBTX, id int64) error {
	if _, err := q.ExecContext(ctx, s.dialect.Rebind(`DELETE FROM entries WHERE list_id = $1`), id); err != nil {
		return fmt.Errorf("failed to delete entries of list: %w", err)
	}

	result, err := q.ExecContext(ctx, s.dialect.Rebind(`DELETE FROM lists WHERE id = $1`), id)
	if err != nil {
		return fmt.Errorf("failed to delete list row: %w", err)
	}

	return database.CheckRowsAffected(result, store.ErrListNotFound)
}
