// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain records persisted by the site:
// User, Contact and Review, with their validation limits.
package model

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Username length limits enforced at write time.
const (
	UsernameMinLen = 4
	UsernameMaxLen = 20
)

// User represents a site account. Accounts are created only by the
// bootstrap seed; there is no signup flow.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdminRole reports whether the given role grants admin access.
// Kept as a pure function so authorization checks do not depend on
// the record type.
func IsAdminRole(role string) bool {
	return role == RoleAdmin
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return IsAdminRole(u.Role)
}
