// Package store implements the durable, user-scoped holiday store on top of
// the repository layer. It owns the database handle, runs migrations on
// startup and translates repository failures into StorageError values that
// carry the attempted operation.
package store

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/holidaybot/internal/bot/models"
	"github.com/dmitrijs2005/holidaybot/internal/bot/repositories/repomanager"
	"github.com/dmitrijs2005/holidaybot/internal/common"
	"github.com/dmitrijs2005/holidaybot/internal/datex"
	"github.com/dmitrijs2005/holidaybot/internal/dbx"
	"github.com/dmitrijs2005/holidaybot/internal/logging"
)

type Service struct {
	db      *sql.DB
	manager repomanager.RepositoryManager
	logger  logging.Logger
}

// NewService opens the database for the configured driver, brings the schema
// up to date and returns a ready-to-use store.
func NewService(ctx context.Context, driver string, dsn string, logger logging.Logger) (*Service, error) {
	manager, err := repomanager.NewManager(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(manager.DriverName(), dsn)
	if err != nil {
		return nil, common.NewStorageError("open", err)
	}

	if err := manager.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, common.NewStorageError("migrate", err)
	}

	return &Service{db: db, manager: manager, logger: logger.With("module", "store")}, nil
}

// Close releases the database handle.
func (s *Service) Close() error {
	return s.db.Close()
}

// EnsureUser registers the user if absent. An existing row is left untouched;
// duplicates never fail the caller.
func (s *Service) EnsureUser(ctx context.Context, userID int64, username string) error {
	err := s.manager.Users(s.db).Ensure(ctx, &models.User{UserID: userID, Username: username})
	if err != nil {
		return common.NewStorageError("ensureUser", err)
	}
	return nil
}

// ListEntries returns all entries for the owner in insertion order; an owner
// with no entries (or an unknown owner) gets an empty slice.
func (s *Service) ListEntries(ctx context.Context, ownerID int64) ([]models.HolidayEntry, error) {
	entries, err := s.manager.Holidays(s.db).List(ctx, ownerID)
	if err != nil {
		return nil, common.NewStorageError("listEntries", err)
	}
	return entries, nil
}

// AddEntry inserts a new entry, always, even when an identical triple exists.
// The user registry row is refreshed best-effort in the same transaction so
// that entries added after a state loss still link to a known user.
func (s *Service) AddEntry(ctx context.Context, ownerID int64, name string, date datex.Date) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.manager.Users(tx).Ensure(ctx, &models.User{UserID: ownerID}); err != nil {
			return err
		}
		return s.manager.Holidays(tx).Add(ctx, &models.HolidayEntry{UserID: ownerID, Name: name, Date: date})
	})
	if err != nil {
		return common.NewStorageError("addEntry", err)
	}
	return nil
}

// DeleteEntry removes every entry for the owner whose name matches exactly
// (case-sensitive) and reports the count. Zero matches is not an error.
func (s *Service) DeleteEntry(ctx context.Context, ownerID int64, name string) (int64, error) {
	n, err := s.manager.Holidays(s.db).DeleteByName(ctx, ownerID, name)
	if err != nil {
		return 0, common.NewStorageError("deleteEntry", err)
	}
	return n, nil
}

// DeleteAllEntries removes every entry for the owner and reports the count.
func (s *Service) DeleteAllEntries(ctx context.Context, ownerID int64) (int64, error) {
	n, err := s.manager.Holidays(s.db).DeleteAll(ctx, ownerID)
	if err != nil {
		return 0, common.NewStorageError("deleteAllEntries", err)
	}
	return n, nil
}
