package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxListNameLength is the longest list name accepted, in characters.
const MaxListNameLength = 255

// List-specific validation errors
var (
	// ErrListNameEmpty is returned when a list name is missing or blank.
	ErrListNameEmpty = fmt.Errorf("%w: list name cannot be empty", ErrValidation)

	// ErrListNameTooLong is returned when a list name exceeds MaxListNameLength.
	ErrListNameTooLong = fmt.Errorf(
		"%w: list name cannot exceed %d characters",
		ErrValidation,
		MaxListNameLength,
	)
)

// List is a named container owning zero or more entries.
// The ID is assigned by the store and never changes afterwards.
type List struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewList creates an unsaved List with the given name.
// Returns an error if validation fails.
func NewList(name string) (*List, error) {
	list := &List{Name: name}

	if err := list.Validate(); err != nil {
		return nil, err
	}

	return list, nil
}

// Validate checks if the List has valid data.
func (l *List) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrListNameEmpty
	}

	if utf8.RuneCountInString(l.Name) > MaxListNameLength {
		return ErrListNameTooLong
	}

	return nil
}
