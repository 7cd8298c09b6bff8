package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/holidaybot/internal/bot/migrations"
	"github.com/dmitrijs2005/holidaybot/internal/bot/repositories/holidays"
	"github.com/dmitrijs2005/holidaybot/internal/bot/repositories/users"
	"github.com/dmitrijs2005/holidaybot/internal/dbx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SqliteRepositoryManager vends SQLite-backed repository implementations and
// exposes a schema migration hook. This is the default driver.
type SqliteRepositoryManager struct{}

func (m *SqliteRepositoryManager) DriverName() string {
	return "sqlite"
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SqliteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Holidays returns a holidays.Repository bound to the provided DBTX.
func (m *SqliteRepositoryManager) Holidays(db dbx.DBTX) holidays.Repository {
	return holidays.NewSQLiteRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *SqliteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "sqlite"); err != nil {
		return err
	}
	return nil
}
