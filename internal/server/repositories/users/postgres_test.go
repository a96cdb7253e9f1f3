package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avoronins/scoreboard/internal/common"
	"github.com/avoronins/scoreboard/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	insertQ = `(?s)^\s*INSERT\s+INTO\s+users\s*\(id,\s*username,\s*email,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+created_at\s*$`
	selectQ = `(?s)^\s*SELECT\s+id,\s*username,\s*email,\s*password_hash,\s*created_at\s+FROM\s+users\s+WHERE\s+`
)

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(created)
	mock.ExpectQuery(insertQ).
		WithArgs(sqlmock.AnyArg(), "alice", sql.NullString{}, "$argon2id$...").
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &models.User{
		Username:     "alice",
		PasswordHash: "$argon2id$...",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatal("Create must assign an ID")
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected CreatedAt: %v", got.CreatedAt)
	}
}

func TestCreate_WithEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	email := "alice@example.com"
	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now())
	mock.ExpectQuery(insertQ).
		WithArgs(sqlmock.AnyArg(), "alice", sql.NullString{String: email, Valid: true}, "h").
		WillReturnRows(rows)

	_, err := repo.Create(context.Background(), &models.User{
		Username:     "alice",
		Email:        &email,
		PasswordHash: "h",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WithArgs(sqlmock.AnyArg(), "alice", sql.NullString{}, "h").
		WillReturnError(errors.New("duplicate key"))

	_, err := repo.Create(context.Background(), &models.User{Username: "alice", PasswordHash: "h"})
	if err == nil || !regexp.MustCompile(`db error: .*duplicate key`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow("u-1", "alice", "alice@example.com", "h", time.Now())
	mock.ExpectQuery(selectQ + `username`).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.ID != "u-1" || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.Email == nil || *got.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %+v", got.Email)
	}
}

func TestGetByUsername_NullEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow("u-1", "alice", nil, "h", time.Now())
	mock.ExpectQuery(selectQ + `username`).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.Email != nil {
		t.Fatalf("email must be nil, got %q", *got.Email)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ + `username`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ + `email`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestSetEmail_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+users\s+SET\s+email\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2\s*$`
	mock.ExpectExec(q).
		WithArgs("alice@example.com", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetEmail(context.Background(), "u-1", "alice@example.com"); err != nil {
		t.Fatalf("SetEmail error: %v", err)
	}
}

func TestUpdatePasswordHash_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+users\s+SET\s+password_hash\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2\s*$`
	mock.ExpectExec(q).
		WithArgs("newhash", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePasswordHash(context.Background(), "u-1", "newhash"); err != nil {
		t.Fatalf("UpdatePasswordHash error: %v", err)
	}
}

func TestUpdatePasswordHash_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+users\s+SET\s+password_hash`
	mock.ExpectExec(q).
		WithArgs("newhash", "u-1").
		WillReturnError(errors.New("db down"))

	err := repo.UpdatePasswordHash(context.Background(), "u-1", "newhash")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
