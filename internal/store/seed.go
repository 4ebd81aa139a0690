// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/rherren/eventsite/internal/auth"
	"github.com/rherren/eventsite/internal/model"
)

// SeedParams holds the externally supplied admin credentials for seeding.
type SeedParams struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Seed creates initial data: one admin account if the users table is empty,
// and three sample approved reviews if the reviews table is empty. Both
// checks are intentional no-ops when data already exists.
func Seed(ctx context.Context, db *sql.DB, params SeedParams) error {
	queries := New(db)

	if err := seedAdmin(ctx, queries, params); err != nil {
		return err
	}

	// Sample reviews are inserted in a single transaction.
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := seedReviews(ctx, queries.WithTx(tx)); err != nil {
		return err
	}
	return tx.Commit()
}

func seedAdmin(ctx context.Context, queries *Queries, params SeedParams) error {
	count, err := queries.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		slog.Info("users exist, skipping admin seed")
		return nil
	}

	if n := len(params.AdminUsername); n < model.UsernameMinLen || n > model.UsernameMaxLen {
		return fmt.Errorf("admin username must be %d-%d characters, got %d",
			model.UsernameMinLen, model.UsernameMaxLen, n)
	}

	passwordHash, err := auth.HashPassword(params.AdminPassword)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	user, err := queries.CreateUser(ctx, CreateUserParams{
		Username:     params.AdminUsername,
		Email:        params.AdminEmail,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created admin user", "id", user.ID, "username", user.Username)
	return nil
}

// sampleReviews are shown on a fresh install so the public reviews page
// is not empty.
var sampleReviews = []CreateReviewParams{
	{
		Name:     "Sarah M.",
		Rating:   5,
		Service:  model.ServiceWedding,
		Comment:  "Our wedding was absolutely perfect. The team handled everything and the dance floor was packed all night!",
		Approved: true,
	},
	{
		Name:     "James T.",
		Rating:   5,
		Service:  model.ServiceCorporate,
		Comment:  "Professional from first contact to teardown. Our annual company party has never run this smoothly.",
		Approved: true,
	},
	{
		Name:     "Lena K.",
		Rating:   4,
		Service:  model.ServiceBirthday,
		Comment:  "Great energy and song selection for my daughter's sweet sixteen. Would book again in a heartbeat.",
		Approved: true,
	},
}

func seedReviews(ctx context.Context, queries *Queries) error {
	count, err := queries.CountReviews(ctx)
	if err != nil {
		return fmt.Errorf("counting reviews: %w", err)
	}
	if count > 0 {
		slog.Info("reviews exist, skipping review seed")
		return nil
	}

	now := time.Now()
	for i, params := range sampleReviews {
		// Stagger creation times so the newest-first listing is stable.
		params.CreatedAt = now.Add(-time.Duration(len(sampleReviews)-i) * time.Hour)
		if _, err := queries.CreateReview(ctx, params); err != nil {
			return fmt.Errorf("creating sample review: %w", err)
		}
	}

	slog.Info("created sample reviews", "count", len(sampleReviews))
	return nil
}
