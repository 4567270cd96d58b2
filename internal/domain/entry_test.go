package domain

import (
	"errors"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestNewEntry(t *testing.T) {
	t.Parallel()

	entry, err := NewEntry(7, strPtr("milk"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if entry.ListID != 7 {
		t.Errorf("Expected list ID 7, got %d", entry.ListID)
	}

	if entry.Description != "milk" {
		t.Errorf("Expected description %q, got %q", "milk", entry.Description)
	}

	// Missing description
	_, err = NewEntry(7, nil)
	if !errors.Is(err, ErrEntryDescriptionMissing) {
		t.Errorf("Expected error %v, got %v", ErrEntryDescriptionMissing, err)
	}

	// Empty description is allowed
	if _, err := NewEntry(7, strPtr("")); err != nil {
		t.Errorf("Expected empty description to be accepted, got %v", err)
	}

	// No owning list
	_, err = NewEntry(0, strPtr("milk"))
	if !errors.Is(err, ErrEntryListIDInvalid) {
		t.Errorf("Expected error %v, got %v", ErrEntryListIDInvalid, err)
	}
}

func TestEntryDescriptionLength(t *testing.T) {
	t.Parallel()

	atLimit := strings.Repeat("x", MaxEntryDescriptionLength)
	if _, err := NewEntry(1, &atLimit); err != nil {
		t.Errorf("Expected %d characters to be accepted, got %v", MaxEntryDescriptionLength, err)
	}

	overLimit := atLimit + "x"
	_, err := NewEntry(1, &overLimit)
	if !errors.Is(err, ErrEntryDescriptionTooLong) {
		t.Errorf("Expected error %v, got %v", ErrEntryDescriptionTooLong, err)
	}

	// Length is counted in characters, not bytes
	wide := strings.Repeat("€", MaxEntryDescriptionLength)
	if _, err := NewEntry(1, &wide); err != nil {
		t.Errorf("Expected multibyte description at limit to be accepted, got %v", err)
	}
}

func TestEntryBelongsTo(t *testing.T) {
	t.Parallel()

	e := Entry{ID: 3, ListID: 1, Description: "milk"}
	if !e.BelongsTo(1) {
		t.Error("Expected entry to belong to list 1")
	}
	if e.BelongsTo(2) {
		t.Error("Expected entry not to belong to list 2")
	}
}
