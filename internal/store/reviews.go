// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/rherren/eventsite/internal/model"
)

const createReviewQuery = `
INSERT INTO reviews (name, rating, service, comment, approved, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, name, rating, service, comment, approved, created_at`

// CreateReviewParams holds the fields for CreateReview.
type CreateReviewParams struct {
	Name      string
	Rating    int
	Service   string
	Comment   string
	Approved  bool
	CreatedAt time.Time
}

// CreateReview inserts a review. Public submissions always pass
// Approved: false; only seeding inserts approved reviews directly.
func (q *Queries) CreateReview(ctx context.Context, arg CreateReviewParams) (model.Review, error) {
	row := q.db.QueryRowContext(ctx, createReviewQuery,
		arg.Name, arg.Rating, arg.Service, arg.Comment, arg.Approved, arg.CreatedAt)
	return scanReview(row)
}

const getReviewByIDQuery = `
SELECT id, name, rating, service, comment, approved, created_at
FROM reviews WHERE id = ?`

// GetReviewByID fetches a review by primary key.
func (q *Queries) GetReviewByID(ctx context.Context, id int64) (model.Review, error) {
	return scanReview(q.db.QueryRowContext(ctx, getReviewByIDQuery, id))
}

const listApprovedReviewsQuery = `
SELECT id, name, rating, service, comment, approved, created_at
FROM reviews WHERE approved = 1
ORDER BY created_at DESC, id DESC`

// ListApprovedReviews returns approved reviews, newest first.
func (q *Queries) ListApprovedReviews(ctx context.Context) ([]model.Review, error) {
	return q.listReviews(ctx, listApprovedReviewsQuery)
}

const listPendingReviewsQuery = `
SELECT id, name, rating, service, comment, approved, created_at
FROM reviews WHERE approved = 0
ORDER BY created_at DESC, id DESC`

// ListPendingReviews returns reviews awaiting approval, newest first.
func (q *Queries) ListPendingReviews(ctx context.Context) ([]model.Review, error) {
	return q.listReviews(ctx, listPendingReviewsQuery)
}

const approveReviewQuery = `UPDATE reviews SET approved = 1 WHERE id = ?`

// ApproveReview marks a review as approved. The transition is one-way and
// idempotent: re-approving an approved review is a no-op.
func (q *Queries) ApproveReview(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, approveReviewQuery, id)
	return err
}

const countReviewsQuery = `SELECT COUNT(*) FROM reviews`

// CountReviews returns the total number of reviews.
func (q *Queries) CountReviews(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countReviewsQuery).Scan(&count)
	return count, err
}

const countPendingReviewsQuery = `SELECT COUNT(*) FROM reviews WHERE approved = 0`

// CountPendingReviews returns the number of reviews awaiting approval.
func (q *Queries) CountPendingReviews(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countPendingReviewsQuery).Scan(&count)
	return count, err
}

func (q *Queries) listReviews(ctx context.Context, query string) ([]model.Review, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var r model.Review
		if err := rows.Scan(&r.ID, &r.Name, &r.Rating, &r.Service, &r.Comment, &r.Approved, &r.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

func scanReview(row rowScanner) (model.Review, error) {
	var r model.Review
	err := row.Scan(&r.ID, &r.Name, &r.Rating, &r.Service, &r.Comment, &r.Approved, &r.CreatedAt)
	return r, err
}
