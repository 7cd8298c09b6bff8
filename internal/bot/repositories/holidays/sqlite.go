package holidays

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/holidaybot/internal/bot/models"
	"github.com/dmitrijs2005/holidaybot/internal/datex"
	"github.com/dmitrijs2005/holidaybot/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
// Dates are stored as ISO yyyy-mm-dd text.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context, userID int64) ([]models.HolidayEntry, error) {
	query := `SELECT id, user_id, holiday_name, holiday_date FROM personal_holidays
			WHERE user_id = ?
			ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	entries := make([]models.HolidayEntry, 0)
	for rows.Next() {
		var e models.HolidayEntry
		var date string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.Date, err = datex.ParseISO(date)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entries, nil
}

func (r *SQLiteRepository) Add(ctx context.Context, entry *models.HolidayEntry) error {
	query := `INSERT INTO personal_holidays (user_id, holiday_name, holiday_date)
			VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, entry.UserID, entry.Name, entry.Date.ISO())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

func (r *SQLiteRepository) DeleteByName(ctx context.Context, userID int64, name string) (int64, error) {
	query := `DELETE FROM personal_holidays WHERE user_id = ? AND holiday_name = ?`

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

func (r *SQLiteRepository) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	query := `DELETE FROM personal_holidays WHERE user_id = ?`

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
