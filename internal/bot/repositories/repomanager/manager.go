// Package repomanager wires repository constructors and schema migrations for
// the supported database drivers.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/holidaybot/internal/bot/repositories/holidays"
	"github.com/dmitrijs2005/holidaybot/internal/bot/repositories/users"
	"github.com/dmitrijs2005/holidaybot/internal/dbx"
)

// Driver names accepted in configuration.
const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
)

type RepositoryManager interface {
	// DriverName returns the database/sql driver to open connections with.
	DriverName() string

	// RunMigrations brings the schema up to date. It must be called before
	// the first repository use.
	RunMigrations(ctx context.Context, db *sql.DB) error

	Users(db dbx.DBTX) users.Repository
	Holidays(db dbx.DBTX) holidays.Repository
}

// NewManager selects a RepositoryManager by the configured driver name.
func NewManager(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverSqlite:
		return &SqliteRepositoryManager{}, nil
	case DriverPostgres:
		return &PostgresRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
