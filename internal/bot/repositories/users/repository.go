package users

import (
	"context"

	"github.com/dmitrijs2005/holidaybot/internal/bot/models"
)

// Repository persists the user registry.
type Repository interface {
	// Ensure inserts the user if no row with the same external id exists.
	// An existing row is left untouched: duplicates are silently ignored,
	// never overwritten.
	Ensure(ctx context.Context, user *models.User) error

	// GetByUserID returns the user with the given external id, or
	// common.ErrorNotFound.
	GetByUserID(ctx context.Context, userID int64) (*models.User, error)
}
