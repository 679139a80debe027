// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func newTestDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return newDB(conn, driver, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, config.DriverPostgres)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "alice", Email: "a@x.io", PasswordHash: "$2a$10$hash"}

	mock.ExpectQuery(`INSERT INTO users \(username,email,password_hash,created_at\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id`).
		WithArgs(user.Username, user.Email, user.PasswordHash, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != "alice" || created.Email != "a@x.io" {
		t.Errorf("unexpected user returned: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"postgres", pgError(pgerrcode.UniqueViolation)},
		{"sqlite", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectQuery("INSERT INTO users").
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnError(tt.err)

			_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
			if !errors.Is(err, ErrUserAlreadyExists) {
				t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
			}
		})
	}
}

func TestCreateUser_OtherDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if errors.Is(err, ErrUserAlreadyExists) {
		t.Fatal("connection failure must not look like a duplicate")
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userColumns).
		AddRow(7, "alice", "a@x.io", "$2a$10$hash", sqlmockNow())

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at FROM users WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(rows)

	user, err := repo.FindUserByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != 7 || user.PasswordHash != "$2a$10$hash" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByUsername_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("alice").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		mock.ExpectQuery(`SELECT id, username, email FROM users WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(publicUserColumns).AddRow(3, "bob", "b@x.io"))

		user, err := repo.FindUserByID(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user != (models.User{UserID: 3, Username: "bob", Email: "b@x.io"}) {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindUserByID(context.Background(), 99)
		if !errors.Is(err, ErrNoUserWasFound) {
			t.Fatalf("expected ErrNoUserWasFound, got %v", err)
		}
	})
}

func TestListUsers_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(publicUserColumns).
		AddRow(1, "alice", "a@x.io").
		AddRow(2, "bob", "b@x.io")

	mock.ExpectQuery(`SELECT id, username, email FROM users ORDER BY id`).
		WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "alice" || users[1].Username != "bob" {
		t.Errorf("unexpected order: %+v", users)
	}
	if users[0].PasswordHash != "" {
		t.Error("listing must not carry password hashes")
	}
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(publicUserColumns))

	users, err := repo.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", users)
	}
}

func TestListUsers_Errors(t *testing.T) {
	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(errors.New("boom"))

		_, err := repo.ListUsers(context.Background())
		if !errors.Is(err, ErrExecutingQuery) {
			t.Fatalf("expected ErrExecutingQuery, got %v", err)
		}
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		rows := sqlmock.NewRows(publicUserColumns).
			AddRow(1, "alice", "a@x.io").
			RowError(0, errors.New("broken row"))
		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(rows)

		_, err := repo.ListUsers(context.Background())
		if !errors.Is(err, ErrScanningRows) {
			t.Fatalf("expected ErrScanningRows, got %v", err)
		}
	})
}
