package store

import (
	"context"

	"github.com/phrazzld/todolist-api/internal/domain"
)

// EntryStore defines the interface for entry data persistence.
type EntryStore interface {
	// Create saves a new entry and sets its generated ID.
	// Returns validation errors from the domain Entry if data is invalid.
	// Returns an error matching both ErrInvalidEntity and ErrListNotFound if
	// the owning list does not exist.
	Create(ctx context.Context, entry *domain.Entry) error

	// GetByID retrieves an entry by its ID.
	// Returns ErrEntryNotFound if the entry does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Entry, error)

	// GetAllByListID retrieves the entries of a list ordered by ID.
	// Returns an empty slice both when the list has no entries and when the
	// list does not exist; callers that care must check the list themselves.
	GetAllByListID(ctx context.Context, listID int64) ([]*domain.Entry, error)

	// Delete removes an entry.
	// Returns ErrEntryNotFound if the entry does not exist.
	Delete(ctx context.Context, id int64) error
}
