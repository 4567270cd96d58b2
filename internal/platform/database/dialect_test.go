package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectForDriver(t *testing.T) {
	d, err := DialectForDriver("pgx")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)

	d, err = DialectForDriver("sqlite")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)

	_, err = DialectForDriver("mysql")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestRebind(t *testing.T) {
	query := "SELECT id FROM entries WHERE id = $1 AND list_id = $2"

	assert.Equal(t, query, Postgres.Rebind(query))
	assert.Equal(t, "SELECT id FROM entries WHERE id = ?1 AND list_id = ?2", SQLite.Rebind(query))
	assert.Equal(t, "VALUES (?10)", SQLite.Rebind("VALUES ($10)"))
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{":memory:", "file::memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"todo.db", "todo.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"file:todo.db?cache=shared", "file:todo.db?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"file:todo.db?_pragma=foreign_keys(1)", "file:todo.db?_pragma=foreign_keys(1)"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, sqliteDSN(tc.in))
		})
	}
}
