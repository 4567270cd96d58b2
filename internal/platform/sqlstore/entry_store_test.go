package sqlstore_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
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

func createEntry(t *testing.T, entries *sqlstore.EntryStore, listID int64, description string) *domain.Entry {
	t.Helper()
	entry, err := domain.NewEntry(listID, &description)
	require.NoError(t, err)
	require.NoError(t, entries.Create(context.Background(), entry))
	return entry
}

func TestEntryStore_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("persists entry", func(t *testing.T) {
		t.Parallel()
		_, lists, entries := newSQLiteStores(t)
		list := createList(t, lists, "groceries")

		entry := createEntry(t, entries, list.ID, "milk")
		assert.Equal(t, int64(1), entry.ID)

		got, err := entries.GetByID(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, "milk", got.Description)
		assert.Equal(t, list.ID, got.ListID)
	})

	t.Run("empty description is stored", func(t *testing.T) {
		t.Parallel()
		_, lists, entries := newSQLiteStores(t)
		list := createList(t, lists, "groceries")

		entry := createEntry(t, entries, list.ID, "")

		got, err := entries.GetByID(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, "", got.Description)
	})

	t.Run("maximum length description", func(t *testing.T) {
		t.Parallel()
		_, lists, entries := newSQLiteStores(t)
		list := createList(t, lists, "groceries")

		long := strings.Repeat("é", domain.MaxEntryDescriptionLength)
		entry := createEntry(t, entries, list.ID, long)

		got, err := entries.GetByID(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, long, got.Description)
	})

	t.Run("missing list", func(t *testing.T) {
		t.Parallel()
		_, _, entries := newSQLiteStores(t)

		description := "milk"
		entry, err := domain.NewEntry(7, &description)
		require.NoError(t, err)

		err = entries.Create(ctx, entry)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("invalid entry is rejected before write", func(t *testing.T) {
		t.Parallel()
		_, lists, entries := newSQLiteStores(t)
		list := createList(t, lists, "groceries")

		entry := &domain.Entry{
			ListID:      list.ID,
			Description: strings.Repeat("x", domain.MaxEntryDescriptionLength+1),
		}
		err := entries.Create(ctx, entry)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestEntryStore_GetAllByListID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, lists, entries := newSQLiteStores(t)

	groceries := createList(t, lists, "groceries")
	chores := createList(t, lists, "chores")

	empty, err := entries.GetAllByListID(ctx, groceries.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	createEntry(t, entries, groceries.ID, "milk")
	createEntry(t, entries, chores.ID, "dishes")
	createEntry(t, entries, groceries.ID, "eggs")

	got, err := entries.GetAllByListID(ctx, groceries.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "milk", got[0].Description)
	assert.Equal(t, "eggs", got[1].Description)
	for _, entry := range got {
		assert.Equal(t, groceries.ID, entry.ListID)
	}
}

func TestEntryStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("existing entry", func(t *testing.T) {
		t.Parallel()
		_, lists, entries := newSQLiteStores(t)
		list := createList(t, lists, "groceries")
		entry := createEntry(t, entries, list.ID, "milk")

		require.NoError(t, entries.Delete(ctx, entry.ID))

		_, err := entries.GetByID(ctx, entry.ID)
		assert.ErrorIs(t, err, store.ErrEntryNotFound)
	})

	t.Run("missing entry", func(t *testing.T) {
		t.Parallel()
		_, _, entries := newSQLiteStores(t)

		err := entries.Delete(ctx, 3)
		assert.ErrorIs(t, err, store.ErrEntryNotFound)
	})
}

func TestEntryStore_DriverErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("postgres foreign key violation", func(t *testing.T) {
		t.Parallel()
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("INSERT INTO entries").
			WithArgs(int64(9), "milk").
			WillReturnError(&pgconn.PgError{Code: "23503"})

		entries := sqlstore.NewEntryStore(db, database.Postgres, nil)
		err = entries.Create(ctx, &domain.Entry{ListID: 9, Description: "milk"})

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure listing entries", func(t *testing.T) {
		t.Parallel()
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT id, list_id, description").
			WithArgs(int64(1)).
			WillReturnError(errors.New("connection reset"))

		entries := sqlstore.NewEntryStore(db, database.Postgres, nil)
		got, err := entries.GetAllByListID(ctx, 1)

		assert.Nil(t, got)
		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "get_all", storeErr.Operation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete result error", func(t *testing.T) {
		t.Parallel()
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("DELETE FROM entries").
			WithArgs(int64(2)).
			WillReturnResult(sqlmock.NewErrorResult(errors.New("rows affected unavailable")))

		entries := sqlstore.NewEntryStore(db, database.Postgres, nil)
		err = entries.Delete(ctx, 2)

		require.Error(t, err)
		assert.False(t, store.IsNotFoundError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// Runs against a real PostgreSQL server when TODO_TEST_DATABASE_URL is set.
func TestStores_Postgres(t *testing.T) {
	db := testdb.Postgres(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		lists := sqlstore.NewListStore(tx, database.Postgres, nil)
		entries := sqlstore.NewEntryStore(tx, database.Postgres, nil)

		list := &domain.List{Name: "integration"}
		require.NoError(t, lists.Create(ctx, list))

		err := lists.Create(ctx, &domain.List{Name: "integration-other"})
		require.NoError(t, err)

		description := "milk"
		entry, err := domain.NewEntry(list.ID, &description)
		require.NoError(t, err)
		require.NoError(t, entries.Create(ctx, entry))

		got, err := entries.GetAllByListID(ctx, list.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, entry.ID, got[0].ID)

		require.NoError(t, lists.Delete(ctx, list.ID))
		_, err = entries.GetByID(ctx, entry.ID)
		assert.ErrorIs(t, err, store.ErrEntryNotFound)
	})
}
