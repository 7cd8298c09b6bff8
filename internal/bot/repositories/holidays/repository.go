package holidays

import (
	"context"

	"github.com/dmitrijs2005/holidaybot/internal/bot/models"
)

// Repository persists personal holiday entries.
//
// Names are not a unique key: Add always inserts a new row even for an
// identical (user, name, date) triple, and DeleteByName removes every row
// whose name matches exactly (case-sensitive).
type Repository interface {
	// List returns all entries for the user in insertion order. No entries
	// yields an empty slice, not an error.
	List(ctx context.Context, userID int64) ([]models.HolidayEntry, error)

	// Add inserts a new entry.
	Add(ctx context.Context, entry *models.HolidayEntry) error

	// DeleteByName removes all entries for the user with that exact name and
	// reports how many rows were removed. Zero is not an error.
	DeleteByName(ctx context.Context, userID int64, name string) (int64, error)

	// DeleteAll removes every entry for the user and reports the count.
	DeleteAll(ctx context.Context, userID int64) (int64, error)
}
