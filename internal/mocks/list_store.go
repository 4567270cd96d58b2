package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/store"
)

// MockListStore implements store.ListStore for testing
type MockListStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, list *domain.List) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.List, error)
	GetAllFn  func(ctx context.Context) ([]*domain.List, error)
	DeleteFn  func(ctx context.Context, id int64) error

	// Entries receives cascaded deletes when set
	Entries *MockEntryStore

	mu     sync.Mutex
	lists  map[int64]*domain.List
	nextID int64
}

// NewMockListStore creates an empty in-memory list store
func NewMockListStore() *MockListStore {
	return &MockListStore{
		lists: make(map[int64]*domain.List),
	}
}

// NewMockStores creates a list store and an entry store that share
// referential behavior: entries require an existing list and deleting a list
// removes its entries.
func NewMockStores() (*MockListStore, *MockEntryStore) {
	lists := NewMockListStore()
	entries := NewMockEntryStore()
	lists.Entries = entries
	entries.Lists = lists
	return lists, entries
}

// Ensure MockListStore implements store.ListStore interface
var _ store.ListStore = (*MockListStore)(nil)

// Create implements the ListStore interface
func (m *MockListStore) Create(ctx context.Context, list *domain.List) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, list)
	}

	if err := list.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.lists {
		if existing.Name == list.Name {
			return fmt.Errorf("%w: %q", store.ErrListNameExists, list.Name)
		}
	}

	m.nextID++
	list.ID = m.nextID
	stored := *list
	m.lists[list.ID] = &stored
	return nil
}

// GetByID implements the ListStore interface
func (m *MockListStore) GetByID(ctx context.Context, id int64) (*domain.List, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	list, ok := m.lists[id]
	if !ok {
		return nil, store.ErrListNotFound
	}
	found := *list
	return &found, nil
}

// GetAll implements the ListStore interface
func (m *MockListStore) GetAll(ctx context.Context) ([]*domain.List, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]*domain.List, 0, len(m.lists))
	for _, list := range m.lists {
		copied := *list
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

// Delete implements the ListStore interface
func (m *MockListStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	if _, ok := m.lists[id]; !ok {
		m.mu.Unlock()
		return store.ErrListNotFound
	}
	delete(m.lists, id)
	m.mu.Unlock()

	if m.Entries != nil {
		m.Entries.deleteByListID(id)
	}
	return nil
}

// Add stores a list directly, bypassing validation, and returns its ID
func (m *MockListStore) Add(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.lists[m.nextID] = &domain.List{ID: m.nextID, Name: name}
	return m.nextID
}

func (m *MockListStore) exists(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.lists[id]
	return ok
}
