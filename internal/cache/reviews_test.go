// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rherren/eventsite/internal/model"
)

func testReviewCache(t *testing.T) *ReviewCache {
	t.Helper()
	backend := NewMemoryCache(time.Minute, 0)
	t.Cleanup(func() { _ = backend.Close() })
	return NewReviewCache(backend, time.Minute)
}

func sampleReviews() []model.Review {
	return []model.Review{
		{ID: 2, Name: "Dana", Rating: 5, Comment: "Flawless wedding reception.", Approved: true},
		{ID: 1, Name: "Sam", Rating: 4, Comment: "Great corporate retreat.", Approved: true},
	}
}

func TestReviewCacheRoundTrip(t *testing.T) {
	c := testReviewCache(t)
	ctx := context.Background()

	if _, ok := c.Get(ctx); ok {
		t.Fatal("empty cache should miss")
	}

	if err := c.Set(ctx, sampleReviews()); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	got, ok := c.Get(ctx)
	if !ok {
		t.Fatal("expected cache hit after Set")
	}
	if len(got) != 2 || got[0].ID != 2 || got[0].Name != "Dana" {
		t.Errorf("cached reviews = %+v", got)
	}
}

func TestReviewCacheGetOrLoad(t *testing.T) {
	c := testReviewCache(t)
	ctx := context.Background()

	loads := 0
	load := func(context.Context) ([]model.Review, error) {
		loads++
		return sampleReviews(), nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrLoad(ctx, load)
		if err != nil {
			t.Fatalf("GetOrLoad error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("GetOrLoad returned %d reviews; want 2", len(got))
		}
	}

	if loads != 1 {
		t.Errorf("loader called %d times; want 1", loads)
	}
}

func TestReviewCacheGetOrLoadPropagatesError(t *testing.T) {
	c := testReviewCache(t)

	wantErr := errors.New("db down")
	_, err := c.GetOrLoad(context.Background(), func(context.Context) ([]model.Review, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("GetOrLoad error = %v; want %v", err, wantErr)
	}
}

func TestReviewCacheInvalidate(t *testing.T) {
	c := testReviewCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, sampleReviews()); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	c.Invalidate(ctx)

	if _, ok := c.Get(ctx); ok {
		t.Error("expected miss after Invalidate")
	}
}
