package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/redact"
	"github.com/phrazzld/todolist-api/internal/store"
)

// TodoService provides the list and entry operations exposed over HTTP.
type TodoService interface {
	// ListAllLists returns every list ordered by ID.
	ListAllLists(ctx context.Context) ([]*domain.List, error)

	// ListEntries returns the entries of a list ordered by ID.
	// Returns ErrListNotFound if the list does not exist.
	ListEntries(ctx context.Context, listID int64) ([]*domain.Entry, error)

	// CreateList creates a list with the given name.
	// Returns a domain validation error for an empty or oversized name and
	// ErrDuplicateListName if the name is taken.
	CreateList(ctx context.Context, name string) (*domain.List, error)

	// CreateEntry adds an entry to a list.
	// Returns ErrListNotFound if the list does not exist and a domain
	// validation error if the description is missing or too long.
	CreateEntry(ctx context.Context, listID int64, description *string) (*domain.Entry, error)

	// DeleteList removes a list and all of its entries.
	// Returns ErrListNotFound if the list does not exist.
	DeleteList(ctx context.Context, listID int64) error

	// DeleteEntry removes an entry from the list that owns it.
	// Returns ErrListNotFound or ErrEntryNotFound when an ID does not resolve
	// and ErrEntryNotInList when the entry belongs to another list.
	DeleteEntry(ctx context.Context, listID, entryID int64) error
}

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	lists   store.ListStore
	entries store.EntryStore
	logger  *slog.Logger
}

// NewTodoService creates a new TodoService.
// It returns an error if either store is nil.
func NewTodoService(
	lists store.ListStore,
	entries store.EntryStore,
	logger *slog.Logger,
) (TodoService, error) {
	if lists == nil {
		return nil, domain.NewValidationError("lists", "cannot be nil", domain.ErrValidation)
	}
	if entries == nil {
		return nil, domain.NewValidationError("entries", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &todoServiceImpl{
		lists:   lists,
		entries: entries,
		logger:  logger.With(slog.String("component", "todo_service")),
	}, nil
}

// ListAllLists implements TodoService.ListAllLists
func (s *todoServiceImpl) ListAllLists(ctx context.Context) ([]*domain.List, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	lists, err := s.lists.GetAll(ctx)
	if err != nil {
		log.Error("failed to retrieve lists", slog.String("error", redact.Error(err)))
		return nil, NewTodoServiceError("list_all_lists", "failed to retrieve lists", err)
	}

	log.Debug("retrieved lists", slog.Int("count", len(lists)))
	return lists, nil
}

// ListEntries implements TodoService.ListEntries
func (s *todoServiceImpl) ListEntries(ctx context.Context, listID int64) ([]*domain.Entry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("list_id", listID))

	if _, err := s.lists.GetByID(ctx, listID); err != nil {
		return nil, s.lookupError(log, "list_entries", "failed to retrieve list", err)
	}

	entries, err := s.entries.GetAllByListID(ctx, listID)
	if err != nil {
		log.Error("failed to retrieve entries", slog.String("error", redact.Error(err)))
		return nil, NewTodoServiceError("list_entries", "failed to retrieve entries", err)
	}

	log.Debug("retrieved entries", slog.Int("count", len(entries)))
	return entries, nil
}

// CreateList implements TodoService.CreateList
func (s *todoServiceImpl) CreateList(ctx context.Context, name string) (*domain.List, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	list, err := domain.NewList(name)
	if err != nil {
		log.Debug("invalid list", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.lists.Create(ctx, list); err != nil {
		if errors.Is(err, store.ErrListNameExists) {
			log.Debug("list name already exists")
			return nil, ErrDuplicateListName
		}
		if domain.IsValidationError(err) {
			return nil, err
		}
		log.Error("failed to create list", slog.String("error", redact.Error(err)))
		return nil, NewTodoServiceError("create_list", "failed to save list", err)
	}

	log.Info("list created", slog.Int64("list_id", list.ID))
	return list, nil
}

// CreateEntry implements TodoService.CreateEntry
func (s *todoServiceImpl) CreateEntry(
	ctx context.Context,
	listID int64,
	description *string,
) (*domain.Entry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("list_id", listID))

	if _, err := s.lists.GetByID(ctx, listID); err != nil {
		return nil, s.lookupError(log, "create_entry", "failed to retrieve list", err)
	}

	entry, err := domain.NewEntry(listID, description)
	if err != nil {
		log.Debug("invalid entry", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		// The list can vanish between the lookup and the insert.
		if errors.Is(err, store.ErrListNotFound) {
			log.Debug("list removed before entry was stored")
			return nil, ErrListNotFound
		}
		if domain.IsValidationError(err) {
			return nil, err
		}
		log.Error("failed to create entry", slog.String("error", redact.Error(err)))
		return nil, NewTodoServiceError("create_entry", "failed to save entry", err)
	}

	log.Info("entry created", slog.Int64("entry_id", entry.ID))
	return entry, nil
}

// DeleteList implements TodoService.DeleteList
func (s *todoServiceImpl) DeleteList(ctx context.Context, listID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("list_id", listID))

	if err := s.lists.Delete(ctx, listID); err != nil {
		return s.lookupError(log, "delete_list", "failed to delete list", err)
	}

	log.Info("list deleted")
	return nil
}

// DeleteEntry implements TodoService.DeleteEntry
func (s *todoServiceImpl) DeleteEntry(ctx context.Context, listID, entryID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.Int64("list_id", listID),
		slog.Int64("entry_id", entryID),
	)

	if _, err := s.lists.GetByID(ctx, listID); err != nil {
		return s.lookupError(log, "delete_entry", "failed to retrieve list", err)
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return s.lookupError(log, "delete_entry", "failed to retrieve entry", err)
	}

	if !entry.BelongsTo(listID) {
		log.Debug("entry belongs to another list", slog.Int64("owner_list_id", entry.ListID))
		return fmt.Errorf("%w: entry %d is in list %d", ErrEntryNotInList, entryID, entry.ListID)
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		return s.lookupError(log, "delete_entry", "failed to delete entry", err)
	}

	log.Info("entry deleted")
	return nil
}

// lookupError translates a store failure, logging not-found conditions at
// debug level and everything else at error level.
func (s *todoServiceImpl) lookupError(log *slog.Logger, operation, message string, err error) error {
	mapped := NewTodoServiceError(operation, message, err)

	var serviceErr *TodoServiceError
	if errors.As(mapped, &serviceErr) {
		log.Error(message, slog.String("error", redact.Error(err)))
	} else {
		log.Debug(message, slog.String("error", mapped.Error()))
	}

	return mapped
}
