// Package sqlstore implements the store.ListStore and store.EntryStore
// interfaces on top of database/sql. The same code serves PostgreSQL and
// SQLite; queries are written with $N placeholders and rebound per dialect.
package sqlstore
