package sqlstore_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/platform/database"
	"github.com/phrazzld/todolist-api/internal/platform/sqlstore"
	"github.com/phrazzld/todolist-api/internal/store"
	"github.com/phrazzld/todolist-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStores(t *testing.T) (*sql.DB, *sqlstore.ListStore, *sqlstore.EntryStore) {
	t.Helper()
	db := testdb.SQLite(t)
	return db,
		sqlstore.NewListStore(db, database.SQLite, nil),
		sqlstore.NewEntryStore(db, database.SQLite, nil)
}

func createList(t *testing.T, lists *sqlstore.ListStore, name string) *domain.List {
	t.Helper()
	list, err := domain.NewList(name)
	require.NoError(t, err)
	require.NoError(t, lists.Create(context.Background(), list))
	return list
}

func TestListStore_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("assigns generated id", func(t *testing.T) {
		t.Parallel()
		_, lists, _ := newSQLiteStores(t)

		first := createList(t, lists, "groceries")
		second := createList(t, lists, "chores")

		assert.Equal(t, int64(1), first.ID)
		assert.Greater(t, second.ID, first.ID)

		got, err := lists.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "groceries", got.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()
		_, lists, _ := newSQLiteStores(t)

		createList(t, lists, "groceries")

		dup := &domain.List{Name: "groceries"}
		err := lists.Create(ctx, dup)
		assert.ErrorIs(t, err, store.ErrListNameExists)
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("invalid list is rejected before write", func(t *testing.T) {
		t.Parallel()
		_, lists, _ := newSQLiteStores(t)

		err := lists.Create(ctx, &domain.List{Name: "  "})
		assert.ErrorIs(t, err, domain.ErrValidation)

		all, err := lists.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestListStore_Create_ConcurrentDuplicates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, lists, _ := newSQLiteStores(t)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- lists.Create(ctx, &domain.List{Name: "race"})
		}()
	}
	wg.Wait()
	close(errs)

	var created int
	for err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, store.ErrListNameExists)
	}
	assert.Equal(t, 1, created)

	all, err := lists.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListStore_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	_, lists, _ := newSQLiteStores(t)

	got, err := lists.GetByID(context.Background(), 42)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrListNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestListStore_GetAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, lists, _ := newSQLiteStores(t)

	empty, err := lists.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	createList(t, lists, "b")
	createList(t, lists, "a")

	all, err := lists.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Name)
	assert.Equal(t, "a", all[1].Name)
}

func TestListStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("removes list and its entries", func(t *testing.T) {
		t.Parallel()
		_, lists, entries := newSQLiteStores(t)

		keep := createList(t, lists, "keep")
		drop := createList(t, lists, "drop")

		description := "milk"
		for _, listID := range []int64{keep.ID, drop.ID} {
			entry, err := domain.NewEntry(listID, &description)
			require.NoError(t, err)
			require.NoError(t, entries.Create(ctx, entry))
		}

		require.NoError(t, lists.Delete(ctx, drop.ID))

		_, err := lists.GetByID(ctx, drop.ID)
		assert.ErrorIs(t, err, store.ErrListNotFound)

		orphaned, err := entries.GetAllByListID(ctx, drop.ID)
		require.NoError(t, err)
		assert.Empty(t, orphaned)

		kept, err := entries.GetAllByListID(ctx, keep.ID)
		require.NoError(t, err)
		assert.Len(t, kept, 1)
	})

	t.Run("missing list", func(t *testing.T) {
		t.Parallel()
		_, lists, _ := newSQLiteStores(t)

		err := lists.Delete(ctx, 99)
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})

	t.Run("inside caller transaction", func(t *testing.T) {
		t.Parallel()
		db, lists, _ := newSQLiteStores(t)
		list := createList(t, lists, "scoped")

		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			return sqlstore.NewListStore(tx, database.SQLite, nil).Delete(ctx, list.ID)
		})
		require.NoError(t, err)

		_, err = lists.GetByID(ctx, list.ID)
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})
}

func TestListStore_DriverErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("postgres unique violation", func(t *testing.T) {
		t.Parallel()
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO lists (name) VALUES ($1) RETURNING id`)).
			WithArgs("groceries").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		lists := sqlstore.NewListStore(db, database.Postgres, nil)
		err = lists.Create(ctx, &domain.List{Name: "groceries"})

		assert.ErrorIs(t, err, store.ErrListNameExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unexpected query failure", func(t *testing.T) {
		t.Parallel()
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM lists WHERE id = $1`)).
			WithArgs(int64(1)).
			WillReturnError(errors.New("connection reset"))

		lists := sqlstore.NewListStore(db, database.Postgres, nil)
		_, err = lists.GetByID(ctx, 1)

		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "list", storeErr.Entity)
		assert.Equal(t, "get", storeErr.Operation)
		assert.False(t, store.IsNotFoundError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNewListStore_NilDB(t *testing.T) {
	assert.Panics(t, func() {
		sqlstore.NewListStore(nil, database.SQLite, nil)
	})
}
