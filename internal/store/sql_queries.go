// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-accounts/models"
	sq "github.com/Masterminds/squirrel"
)

// Column lists shared by the query builders below.
var (
	userColumns       = []string{"id", "username", "email", "password_hash", "created_at"}
	publicUserColumns = []string{"id", "username", "email"}
	sessionColumns    = []string{"id", "user_id", "username", "created_at", "expires_at"}
)

// buildCreateUserQuery builds the INSERT for a new user. The generated id is
// read back through RETURNING, which both PostgreSQL and SQLite support.
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(models.User{}.TableName()).
		Columns("username", "email", "password_hash", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.
		Select(publicUserColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(publicUserColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateSessionQuery(b sq.StatementBuilderType, s models.Session) (string, []any, error) {
	query, args, err := b.
		Insert(models.Session{}.TableName()).
		Columns(sessionColumns...).
		Values(s.ID, s.UserID, s.Username, s.CreatedAt, s.ExpiresAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindActiveSessionQuery(b sq.StatementBuilderType, id string, now time.Time) (string, []any, error) {
	query, args, err := b.
		Select(sessionColumns...).
		From(models.Session{}.TableName()).
		Where(sq.Eq{"id": id}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	query, args, err := b.
		Delete(models.Session{}.TableName()).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
