// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builderFor(driver string) *DB {
	return newDB(nil, driver, logger.Nop())
}

func Test_newDB_PlaceholderFormat(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		want   string
	}{
		{name: "postgres uses dollar placeholders", driver: config.DriverPostgres, want: "WHERE username = $1"},
		{name: "sqlite uses question placeholders", driver: config.DriverSQLite, want: "WHERE username = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindUserByUsernameQuery(builderFor(tt.driver).builder, "alice")
			require.NoError(t, err)

			assert.Contains(t, query, tt.want)
			assert.Equal(t, []any{"alice"}, args)
		})
	}
}

func Test_buildCreateUserQuery(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash", CreatedAt: created}

	query, args, err := buildCreateUserQuery(builderFor(config.DriverPostgres).builder, user)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (username,email,password_hash,created_at) VALUES ($1,$2,$3,$4) RETURNING id",
		query)
	assert.Equal(t, []any{"alice", "a@x.com", "hash", created}, args)

	query, _, err = buildCreateUserQuery(builderFor(config.DriverSQLite).builder, user)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO users (username,email,password_hash,created_at) VALUES (?,?,?,?) RETURNING id",
		query)
}

func Test_buildUserReadQueries_ExcludeHash(t *testing.T) {
	b := builderFor(config.DriverPostgres).builder

	byID, args, err := buildFindUserByIDQuery(b, 7)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, username, email FROM users WHERE id = $1", byID)
	assert.Equal(t, []any{int64(7)}, args)

	list, args, err := buildListUsersQuery(b)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, username, email FROM users ORDER BY id", list)
	assert.Empty(t, args)

	for _, q := range []string{byID, list} {
		assert.NotContains(t, strings.ToLower(q), "password_hash")
	}
}

func Test_buildSessionQueries(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name   string
		driver string
		build  func(db *DB) (string, []any, error)
		query  string
		args   []any
	}{
		{
			name:   "find active postgres",
			driver: config.DriverPostgres,
			build: func(db *DB) (string, []any, error) {
				return buildFindActiveSessionQuery(db.builder, "sid", now)
			},
			query: "SELECT id, user_id, username, created_at, expires_at FROM sessions WHERE id = $1 AND expires_at > $2",
			args:  []any{"sid", now},
		},
		{
			name:   "find active sqlite",
			driver: config.DriverSQLite,
			build: func(db *DB) (string, []any, error) {
				return buildFindActiveSessionQuery(db.builder, "sid", now)
			},
			query: "SELECT id, user_id, username, created_at, expires_at FROM sessions WHERE id = ? AND expires_at > ?",
			args:  []any{"sid", now},
		},
		{
			name:   "delete postgres",
			driver: config.DriverPostgres,
			build: func(db *DB) (string, []any, error) {
				return buildDeleteSessionQuery(db.builder, "sid")
			},
			query: "DELETE FROM sessions WHERE id = $1",
			args:  []any{"sid"},
		},
		{
			name:   "delete expired sqlite",
			driver: config.DriverSQLite,
			build: func(db *DB) (string, []any, error) {
				return buildDeleteExpiredSessionsQuery(db.builder, now)
			},
			query: "DELETE FROM sessions WHERE expires_at <= ?",
			args:  []any{now},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build(builderFor(tt.driver))
			require.NoError(t, err)

			assert.Equal(t, tt.query, query)
			assert.Equal(t, tt.args, args)
		})
	}
}

func Test_buildCreateSessionQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := models.Session{ID: "sid", UserID: 1, Username: "alice", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}

	query, args, err := buildCreateSessionQuery(builderFor(config.DriverPostgres).builder, s)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO sessions (id,user_id,username,created_at,expires_at) VALUES ($1,$2,$3,$4,$5)",
		query)
	assert.Equal(t, []any{"sid", int64(1), "alice", now, now.Add(time.Hour)}, args)
}
