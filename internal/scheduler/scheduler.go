// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the site's background jobs: keeping the
// review cache warm and nightly database maintenance.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rherren/eventsite/internal/cache"
	"github.com/rherren/eventsite/internal/store"
)

// Scheduler handles periodic background jobs.
type Scheduler struct {
	db          *sql.DB
	queries     *store.Queries
	reviewCache *cache.ReviewCache
	cron        *cron.Cron
	logger      *slog.Logger
}

// New creates a new scheduler instance.
func New(db *sql.DB, reviewCache *cache.ReviewCache, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:          db,
		queries:     store.New(db),
		reviewCache: reviewCache,
		cron:        cron.New(),
		logger:      logger,
	}
}

// Start registers the jobs and starts the cron loop. The review cache
// is warmed hourly; SQLite maintenance runs nightly at 03:30.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 * * * *", func() {
		if err := s.refreshReviewCache(); err != nil {
			s.logger.Error("failed to refresh review cache", "error", err)
		}
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc("30 3 * * *", func() {
		if err := s.optimizeDatabase(); err != nil {
			s.logger.Error("failed to optimize database", "error", err)
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// refreshReviewCache reloads the approved-reviews listing so the first
// visitor after TTL expiry does not pay the query cost.
func (s *Scheduler) refreshReviewCache() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reviews, err := s.queries.ListApprovedReviews(ctx)
	if err != nil {
		return err
	}

	if err := s.reviewCache.Set(ctx, reviews); err != nil {
		return err
	}

	s.logger.Debug("review cache refreshed", "count", len(reviews))
	return nil
}

// optimizeDatabase runs SQLite's optimize pragma, re-analyzing tables
// the query planner flagged as stale.
func (s *Scheduler) optimizeDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, "PRAGMA optimize"); err != nil {
		return err
	}

	s.logger.Info("database optimized")
	return nil
}
