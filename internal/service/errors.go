package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/todolist-api/internal/store"
)

// Service errors - sentinel errors callers check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Domain validation errors are returned unchanged
// 3. Unexpected errors are wrapped in TodoServiceError
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrListNotFound indicates that the referenced list does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrListNotFound = errors.New("list not found")

	// ErrEntryNotFound indicates that the referenced entry does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrEntryNotInList indicates that an entry exists but belongs to a
	// different list than the one named in the request.
	// API layer should map this to HTTP 400 Bad Request.
	ErrEntryNotInList = errors.New("entry does not belong to list")

	// ErrDuplicateListName indicates that another list already uses the name.
	// API layer should map this to HTTP 400 Bad Request.
	ErrDuplicateListName = errors.New("list name already exists")
)

// TodoServiceError wraps unexpected failures from the todo service with context.
type TodoServiceError struct {
	// Operation is the operation that failed (e.g., "create_list", "delete_entry")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TodoServiceError.
func (e *TodoServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("todo service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("todo service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TodoServiceError) Unwrap() error {
	return e.Err
}

// NewTodoServiceError creates a new TodoServiceError.
// Store sentinels with a service-level equivalent are translated and
// returned without wrapping.
func NewTodoServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrListNotFound), errors.Is(err, store.ErrListNotFound):
		return ErrListNotFound
	case errors.Is(err, ErrEntryNotFound), errors.Is(err, store.ErrEntryNotFound):
		return ErrEntryNotFound
	case errors.Is(err, ErrDuplicateListName), errors.Is(err, store.ErrListNameExists):
		return ErrDuplicateListName
	case errors.Is(err, ErrEntryNotInList):
		return ErrEntryNotInList
	}

	return &TodoServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
