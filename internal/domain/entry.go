package domain

import (
	"fmt"
	"unicode/utf8"
)

// MaxEntryDescriptionLength is the longest entry description accepted, in characters.
const MaxEntryDescriptionLength = 16384

// Entry-specific validation errors
var (
	// ErrEntryDescriptionMissing is returned when no description was supplied.
	// An empty description is allowed; a missing one is not.
	ErrEntryDescriptionMissing = fmt.Errorf("%w: entry description is required", ErrValidation)

	// ErrEntryDescriptionTooLong is returned when a description exceeds
	// MaxEntryDescriptionLength.
	ErrEntryDescriptionTooLong = fmt.Errorf(
		"%w: entry description cannot exceed %d characters",
		ErrValidation,
		MaxEntryDescriptionLength,
	)

	// ErrEntryListIDInvalid is returned when an entry does not reference a list.
	ErrEntryListIDInvalid = fmt.Errorf("%w: entry list ID must be positive", ErrValidation)
)

// Entry is a free-text item belonging to exactly one List.
//
// ListID is a plain foreign key. The owning List is never loaded implicitly;
// callers that need it look it up through the list store. It is not part of
// the JSON representation.
type Entry struct {
	ID          int64  `json:"id"`
	ListID      int64  `json:"-"`
	Description string `json:"description"`
}

// NewEntry creates an unsaved Entry under the given list.
// A nil description is rejected so that "absent" and "empty" stay distinct.
func NewEntry(listID int64, description *string) (*Entry, error) {
	if description == nil {
		return nil, ErrEntryDescriptionMissing
	}

	entry := &Entry{
		ListID:      listID,
		Description: *description,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the Entry has valid data.
func (e *Entry) Validate() error {
	if e.ListID <= 0 {
		return ErrEntryListIDInvalid
	}

	if utf8.RuneCountInString(e.Description) > MaxEntryDescriptionLength {
		return ErrEntryDescriptionTooLong
	}

	return nil
}

// BelongsTo reports whether the entry is owned by the list with the given ID.
func (e *Entry) BelongsTo(listID int64) bool {
	return e.ListID == listID
}
