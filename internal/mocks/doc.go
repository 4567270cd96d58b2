// Package mocks provides in-memory test doubles for the list and entry
// stores.
//
// Every mock exposes function fields that override a method when set. When a
// field is nil the mock falls back to a simple in-memory behavior, so most
// tests only need to seed data:
//
//	lists, entries := mocks.NewMockStores()
//	svc, _ := service.NewTodoService(lists, entries, nil)
//
//	lists.CreateFn = func(ctx context.Context, l *domain.List) error {
//	    return errors.New("boom")
//	}
package mocks
