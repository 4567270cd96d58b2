package store

import (
	"context"

	"github.com/phrazzld/todolist-api/internal/domain"
)

// ListStore defines the interface for list data persistence.
type ListStore interface {
	// Create saves a new list and sets its generated ID.
	// Returns validation errors from the domain List if data is invalid.
	// Returns ErrListNameExists if another list already has the same name.
	Create(ctx context.Context, list *domain.List) error

	// GetByID retrieves a list by its ID.
	// Returns ErrListNotFound if the list does not exist.
	GetByID(ctx context.Context, id int64) (*domain.List, error)

	// GetAll retrieves every list ordered by ID.
	// Returns an empty slice if there are no lists.
	GetAll(ctx context.Context) ([]*domain.List, error)

	// Delete removes a list together with all of its entries.
	// Returns ErrListNotFound if the list does not exist.
	Delete(ctx context.Context, id int64) error
}
