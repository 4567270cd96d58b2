// Package database opens the SQL connection pool used by the stores, applies
// the embedded schema migrations with goose, and translates driver-specific
// errors (PostgreSQL via pgx, SQLite via modernc.org/sqlite) into the
// store package's sentinel errors.
package database
