package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/holidaybot/internal/bot/migrations"
	"github.com/dmitrijs2005/holidaybot/internal/bot/repositories/holidays"
	"github.com/dmitrijs2005/holidaybot/internal/bot/repositories/users"
	"github.com/dmitrijs2005/holidaybot/internal/dbx"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) DriverName() string {
	return "pgx"
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Holidays returns a holidays.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Holidays(db dbx.DBTX) holidays.Repository {
	return holidays.NewPostgresRepository(db)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "postgres"); err != nil {
		return err
	}
	return nil
}
