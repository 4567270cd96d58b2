package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/store"
)

// MockEntryStore implements store.EntryStore for testing
type MockEntryStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, entry *domain.Entry) error
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Entry, error)
	GetAllByListIDFn func(ctx context.Context, listID int64) ([]*domain.Entry, error)
	DeleteFn         func(ctx context.Context, id int64) error

	// Lists is consulted for foreign key checks when set
	Lists *MockListStore

	mu      sync.Mutex
	entries map[int64]*domain.Entry
	nextID  int64
}

// NewMockEntryStore creates an empty in-memory entry store
func NewMockEntryStore() *MockEntryStore {
	return &MockEntryStore{
		entries: make(map[int64]*domain.Entry),
	}
}

// Ensure MockEntryStore implements store.EntryStore interface
var _ store.EntryStore = (*MockEntryStore)(nil)

// Create implements the EntryStore interface
func (m *MockEntryStore) Create(ctx context.Context, entry *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, entry)
	}

	if err := entry.Validate(); err != nil {
		return err
	}

	if m.Lists != nil && !m.Lists.exists(entry.ListID) {
		return fmt.Errorf("%w: %w: id %d", store.ErrInvalidEntity, store.ErrListNotFound, entry.ListID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	entry.ID = m.nextID
	stored := *entry
	m.entries[entry.ID] = &stored
	return nil
}

// GetByID implements the EntryStore interface
func (m *MockEntryStore) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[id]
	if !ok {
		return nil, store.ErrEntryNotFound
	}
	found := *entry
	return &found, nil
}

// GetAllByListID implements the EntryStore interface
func (m *MockEntryStore) GetAllByListID(ctx context.Context, listID int64) ([]*domain.Entry, error) {
	if m.GetAllByListIDFn != nil {
		return m.GetAllByListIDFn(ctx, listID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	matched := []*domain.Entry{}
	for _, entry := range m.entries {
		if entry.BelongsTo(listID) {
			copied := *entry
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

// Delete implements the EntryStore interface
func (m *MockEntryStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[id]; !ok {
		return store.ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

// Add stores an entry directly, bypassing validation and list checks, and
// returns its ID
func (m *MockEntryStore) Add(listID int64, description string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.entries[m.nextID] = &domain.Entry{ID: m.nextID, ListID: listID, Description: description}
	return m.nextID
}

// Len returns the number of stored entries
func (m *MockEntryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *MockEntryStore) deleteByListID(listID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, entry := range m.entries {
		if entry.BelongsTo(listID) {
			delete(m.entries, id)
		}
	}
}
