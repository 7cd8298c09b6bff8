package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/holidaybot/internal/bot/models"
	"github.com/dmitrijs2005/holidaybot/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestEnsure_Postgres_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(user_id,\s*username\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(user_id\)\s+DO\s+NOTHING\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(42), sql.NullString{String: "alice", Valid: true}).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Ensure(context.Background(), &models.User{UserID: 42, Username: "alice"})
	if err != nil {
		t.Fatalf("Ensure error: %v", err)
	}
}

func TestEnsure_Postgres_DuplicateAffectsNothing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users`

	mock.ExpectExec(q).
		WithArgs(int64(42), sql.NullString{String: "alice", Valid: true}).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Ensure(context.Background(), &models.User{UserID: 42, Username: "alice"}); err != nil {
		t.Fatalf("duplicate must not fail the caller: %v", err)
	}
}

func TestEnsure_Postgres_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+users`).
		WithArgs(int64(42), sql.NullString{String: "alice", Valid: true}).
		WillReturnError(errors.New("db down"))

	err := repo.Ensure(context.Background(), &models.User{UserID: 42, Username: "alice"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByUserID_Postgres_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*user_id,\s*COALESCE\(username,\s*''\)\s+FROM\s+users\s+WHERE\s+user_id\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "user_id", "username"}).
		AddRow(int64(1), int64(42), "alice")
	mock.ExpectQuery(q).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	got, err := repo.GetByUserID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByUserID error: %v", err)
	}
	if got.UserID != 42 || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByUserID_Postgres_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*user_id`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUserID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
