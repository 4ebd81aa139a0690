// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, 0)
	defer c.Close()

	ctx := context.Background()

	if _, err := c.Get(ctx, "missing"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get on empty cache = %v; want ErrCacheMiss", err)
	}

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	got, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get = %q; want %q", got, "v")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, 0)
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after expiry = %v; want ErrCacheMiss", err)
	}
}

func TestMemoryCacheGetReturnsCopy(t *testing.T) {
	c := NewMemoryCache(time.Minute, 0)
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("abc"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	first, _ := c.Get(ctx, "k")
	first[0] = 'X'

	second, _ := c.Get(ctx, "k")
	if string(second) != "abc" {
		t.Errorf("stored value mutated through returned slice: %q", second)
	}
}

func TestMemoryCacheDeleteAndClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, 0)
	defer c.Close()

	ctx := context.Background()
	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := c.Get(ctx, "a"); !errors.Is(err, ErrCacheMiss) {
		t.Error("deleted key should miss")
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if _, err := c.Get(ctx, "b"); !errors.Is(err, ErrCacheMiss) {
		t.Error("cleared key should miss")
	}
}

func TestMemoryCacheClosed(t *testing.T) {
	c := NewMemoryCache(time.Minute, 0)
	if err := c.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	// Second close is a no-op
	if err := c.Close(); err != nil {
		t.Fatalf("second Close error: %v", err)
	}

	ctx := context.Background()
	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Get after close = %v; want ErrCacheClosed", err)
	}
	if err := c.Set(ctx, "k", nil, 0); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Set after close = %v; want ErrCacheClosed", err)
	}
}

func TestNewFallsBackToMemory(t *testing.T) {
	// Unreachable Redis URL must not prevent startup
	c := New(Config{
		RedisURL:   "redis://127.0.0.1:1/0",
		DefaultTTL: time.Minute,
	})
	defer c.Close()

	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("New with unreachable redis = %T; want *MemoryCache", c)
	}
}
