package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/holidaybot/internal/bot/models"
	"github.com/dmitrijs2005/holidaybot/internal/common"
	"github.com/dmitrijs2005/holidaybot/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Ensure(ctx context.Context, user *models.User) error {
	query :=
		`INSERT INTO users (user_id, username)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query, user.UserID, nullableString(user.Username))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID int64) (*models.User, error) {
	query :=
		`SELECT id, user_id, COALESCE(username, '') FROM users
		 WHERE user_id = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&user.ID, &user.UserID, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
