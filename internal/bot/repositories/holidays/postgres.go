package holidays

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/holidaybot/internal/bot/models"
	"github.com/dmitrijs2005/holidaybot/internal/datex"
	"github.com/dmitrijs2005/holidaybot/internal/dbx"
)

// PostgresRepository stores dates in a native DATE column.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]models.HolidayEntry, error) {
	query :=
		`SELECT id, user_id, holiday_name, holiday_date FROM personal_holidays
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	entries := make([]models.HolidayEntry, 0)
	for rows.Next() {
		var e models.HolidayEntry
		var date time.Time
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.Date = datex.FromTime(date)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entries, nil
}

func (r *PostgresRepository) Add(ctx context.Context, entry *models.HolidayEntry) error {
	query :=
		`INSERT INTO personal_holidays (user_id, holiday_name, holiday_date)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, entry.UserID, entry.Name, entry.Date.ISO()).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByName(ctx context.Context, userID int64, name string) (int64, error) {
	query :=
		`DELETE FROM personal_holidays
		 WHERE user_id = $1 AND holiday_name = $2
		 `

	res, err := r.db.ExecContext(ctx, query, userID, name)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	query :=
		`DELETE FROM personal_holidays
		 WHERE user_id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
