package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewList(t *testing.T) {
	t.Parallel()

	list, err := NewList("groceries")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if list.ID != 0 {
		t.Errorf("Expected unsaved list to have zero ID, got %d", list.ID)
	}

	if list.Name != "groceries" {
		t.Errorf("Expected name %q, got %q", "groceries", list.Name)
	}
}

func TestListValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid", input: "chores"},
		{name: "empty", input: "", wantErr: ErrListNameEmpty},
		{name: "blank", input: "   ", wantErr: ErrListNameEmpty},
		{name: "at limit", input: strings.Repeat("a", MaxListNameLength)},
		{name: "multibyte at limit", input: strings.Repeat("ж", MaxListNameLength)},
		{name: "over limit", input: strings.Repeat("a", MaxListNameLength+1), wantErr: ErrListNameTooLong},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := List{Name: tc.input}
			err := l.Validate()

			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}

			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Expected error %v, got %v", tc.wantErr, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected error to wrap ErrValidation, got %v", err)
			}
		})
	}
}
