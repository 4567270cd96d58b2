// Package testdb provides database fixtures for tests.
//
// SQLite returns a private, fully migrated in-memory database, so store and
// end-to-end tests run without any external service. Postgres connects to the
// database named by TODO_TEST_DATABASE_URL and skips the test when it is not
// set. WithTx runs a test body inside a transaction that is always rolled
// back, which keeps tests sharing one PostgreSQL database isolated:
//
//	func TestListStore_Postgres(t *testing.T) {
//	    db := testdb.Postgres(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        lists := sqlstore.NewListStore(tx, database.Postgres, nil)
//	        ...
//	    })
//	}
package testdb
