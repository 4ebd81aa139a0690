// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Contact message length limits enforced at write time.
const (
	ContactMessageMinLen = 10
	ContactMessageMaxLen = 1000
)

// Contact represents a contact-form submission. Records are insert-only:
// the application never updates or deletes them.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Service   string    `json:"service"`
	EventDate string    `json:"event_date,omitempty"` // free text, optional
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
