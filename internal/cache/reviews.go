// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/rherren/eventsite/internal/model"
)

// ReviewsKey is the cache key for the approved reviews listing.
const ReviewsKey = "reviews:approved"

// ReviewCache caches the public approved-reviews listing, handling
// JSON serialization over a Cacher backend.
type ReviewCache struct {
	cache Cacher
	ttl   time.Duration
}

// NewReviewCache creates a review cache over the given backend.
func NewReviewCache(cache Cacher, ttl time.Duration) *ReviewCache {
	return &ReviewCache{cache: cache, ttl: ttl}
}

// Get returns the cached listing, or (nil, false) on a miss. Decode
// failures are treated as misses so a corrupt entry heals itself on
// the next Set.
func (c *ReviewCache) Get(ctx context.Context) ([]model.Review, bool) {
	data, err := c.cache.Get(ctx, ReviewsKey)
	if err != nil {
		return nil, false
	}

	var reviews []model.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		slog.Warn("discarding undecodable review cache entry", "error", err)
		return nil, false
	}

	return reviews, true
}

// Set stores the listing.
func (c *ReviewCache) Set(ctx context.Context, reviews []model.Review) error {
	data, err := json.Marshal(reviews)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, ReviewsKey, data, c.ttl)
}

// GetOrLoad returns the cached listing, loading and caching it on a
// miss. Cache write failures are logged, not surfaced, since the
// loaded data is still good.
func (c *ReviewCache) GetOrLoad(ctx context.Context, load func(context.Context) ([]model.Review, error)) ([]model.Review, error) {
	if reviews, ok := c.Get(ctx); ok {
		return reviews, nil
	}

	reviews, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.Set(ctx, reviews); err != nil {
		slog.Warn("failed to cache review listing", "error", err)
	}

	return reviews, nil
}

// Invalidate drops the cached listing. Called when a review is
// approved so the public page reflects it immediately.
func (c *ReviewCache) Invalidate(ctx context.Context) {
	if err := c.cache.Delete(ctx, ReviewsKey); err != nil {
		slog.Warn("failed to invalidate review cache", "error", err)
	}
}
