// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Review rating and comment limits enforced at write time.
const (
	ReviewRatingMin     = 1
	ReviewRatingMax     = 5
	ReviewCommentMinLen = 10
	ReviewCommentMaxLen = 500
)

// Review represents a customer review. New reviews are always created
// unapproved; the only mutation is the one-way admin approval, and
// unapproved reviews never appear in the public listing.
type Review struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Service   string    `json:"service"`
	Comment   string    `json:"comment"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}
