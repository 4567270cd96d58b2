package database

import (
	"fmt"
	"regexp"

	"github.com/phrazzld/todolist-api/internal/config"
)

// Dialect identifies the SQL flavour spoken by the configured driver.
type Dialect string

// Supported dialects.
const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

var positionalParam = regexp.MustCompile(`\$(\d+)`)

// DialectForDriver returns the dialect of a database/sql driver name.
func DialectForDriver(driver string) (Dialect, error) {
	switch driver {
	case config.DriverPostgres:
		return Postgres, nil
	case config.DriverSQLite:
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Rebind rewrites a query written with PostgreSQL-style $N placeholders into
// the form the dialect expects. SQLite receives ?N, which binds by position.
func (d Dialect) Rebind(query string) string {
	if d != SQLite {
		return query
	}
	return positionalParam.ReplaceAllString(query, "?$1")
}
