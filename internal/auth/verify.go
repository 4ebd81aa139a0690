// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/rherren/eventsite/internal/model"
)

// UserLookup resolves a username to a stored user record.
// *store.Queries satisfies this interface.
type UserLookup interface {
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// dummyPasswordHash returns a hash that is verified when the username does
// not exist, so a login attempt takes the same time whether or not the
// account is present.
func dummyPasswordHash() string {
	dummyHashOnce.Do(func() {
		h, err := HashPassword("eventsite-nonexistent-account")
		if err == nil {
			dummyHash = h
		}
	})
	return dummyHash
}

// VerifyCredentials looks up the user by exact username and checks the
// password against the stored hash. Returns (nil, nil) when the credentials
// do not match; an error is returned only for storage failures.
func VerifyCredentials(ctx context.Context, users UserLookup, username, password string) (*model.User, error) {
	user, err := users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Burn the same hashing cost as a real verification.
			if dh := dummyPasswordHash(); dh != "" {
				_, _ = CheckPassword(password, dh)
			}
			return nil, nil
		}
		return nil, err
	}

	valid, err := CheckPassword(password, user.PasswordHash)
	if err != nil || !valid {
		return nil, nil
	}
	return &user, nil
}
