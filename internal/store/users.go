// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/rherren/eventsite/internal/model"
)

const createUserQuery = `
INSERT INTO users (username, email, password_hash, role, created_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, username, email, password_hash, role, created_at`

// CreateUserParams holds the fields for CreateUser.
type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// CreateUser inserts a new user. Username and email uniqueness is enforced
// by the schema; violations surface as constraint errors.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (model.User, error) {
	row := q.db.QueryRowContext(ctx, createUserQuery,
		arg.Username, arg.Email, arg.PasswordHash, arg.Role, arg.CreatedAt)
	return scanUser(row)
}

const getUserByIDQuery = `
SELECT id, username, email, password_hash, role, created_at
FROM users WHERE id = ?`

// GetUserByID fetches a user by primary key.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByIDQuery, id))
}

const getUserByUsernameQuery = `
SELECT id, username, email, password_hash, role, created_at
FROM users WHERE username = ?`

// GetUserByUsername fetches a user by exact username match.
func (q *Queries) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByUsernameQuery, username))
}

const listUsersQuery = `
SELECT id, username, email, password_hash, role, created_at
FROM users ORDER BY id`

// ListUsers returns all users ordered by id. The slice is never nil,
// so an empty table serializes as a JSON array.
func (q *Queries) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := q.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

const updateUserPasswordQuery = `UPDATE users SET password_hash = ? WHERE id = ?`

// UpdateUserPasswordParams holds the fields for UpdateUserPassword.
type UpdateUserPasswordParams struct {
	PasswordHash string
	ID           int64
}

// UpdateUserPassword replaces a user's password hash.
func (q *Queries) UpdateUserPassword(ctx context.Context, arg UpdateUserPasswordParams) error {
	_, err := q.db.ExecContext(ctx, updateUserPasswordQuery, arg.PasswordHash, arg.ID)
	return err
}

const countUsersQuery = `SELECT COUNT(*) FROM users`

// CountUsers returns the total number of users.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countUsersQuery).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}
