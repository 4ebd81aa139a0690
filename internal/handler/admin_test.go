// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rherren/eventsite/internal/model"
	"github.com/rherren/eventsite/internal/store"
)

func TestDashboard(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewAdminHandler(db, testRenderer(t, sm), testReviewCache(t))

	createTestUser(t, db, testUser{Username: "rherren", Email: "ryan@example.com", Role: model.RoleAdmin})
	createTestReview(t, db, "Pending Pat", false)
	createTestReview(t, db, "Approved Alice", true)

	req := requestWithSession(sm, httptest.NewRequest("GET", "/admin", nil))
	w := httptest.NewRecorder()
	h.Dashboard(w, req)

	assertStatus(t, w.Code, http.StatusOK)

	body := w.Body.String()
	if !strings.Contains(body, "pending=1") {
		t.Errorf("expected one pending review, body: %s", body)
	}
	if !strings.Contains(body, "contacts=0") {
		t.Errorf("expected zero contacts, body: %s", body)
	}
}

func TestApproveReview(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	reviewCache := testReviewCache(t)
	h := NewAdminHandler(db, testRenderer(t, sm), reviewCache)

	review := createTestReview(t, db, "Pending Pat", false)

	// Warm the cache so we can observe invalidation
	if err := reviewCache.Set(context.Background(), []model.Review{}); err != nil {
		t.Fatalf("cache Set error: %v", err)
	}

	req := requestWithSession(sm, requestWithURLParams(
		httptest.NewRequest("GET", "/admin/approve_review/1", nil),
		map[string]string{"id": "1"}))
	w := httptest.NewRecorder()
	h.ApproveReview(w, req)

	assertStatus(t, w.Code, http.StatusSeeOther)
	if loc := w.Header().Get("Location"); loc != RouteAdmin {
		t.Errorf("Location = %q; want %q", loc, RouteAdmin)
	}

	got, err := store.New(db).GetReviewByID(context.Background(), review.ID)
	if err != nil {
		t.Fatalf("GetReviewByID error: %v", err)
	}
	if !got.Approved {
		t.Error("review should be approved")
	}

	if _, ok := reviewCache.Get(context.Background()); ok {
		t.Error("approval must invalidate the public listing cache")
	}
}

func TestApproveReviewIdempotent(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewAdminHandler(db, testRenderer(t, sm), testReviewCache(t))

	review := createTestReview(t, db, "Approved Alice", true)

	req := requestWithSession(sm, requestWithURLParams(
		httptest.NewRequest("GET", "/admin/approve_review/1", nil),
		map[string]string{"id": "1"}))
	w := httptest.NewRecorder()
	h.ApproveReview(w, req)

	// Second approval is a quiet no-op
	assertStatus(t, w.Code, http.StatusSeeOther)

	got, err := store.New(db).GetReviewByID(context.Background(), review.ID)
	if err != nil {
		t.Fatalf("GetReviewByID error: %v", err)
	}
	if !got.Approved {
		t.Error("review should stay approved")
	}
}

func TestApproveReviewNotFound(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewAdminHandler(db, testRenderer(t, sm), testReviewCache(t))

	req := requestWithSession(sm, requestWithURLParams(
		httptest.NewRequest("GET", "/admin/approve_review/99", nil),
		map[string]string{"id": "99"}))
	w := httptest.NewRecorder()
	h.ApproveReview(w, req)

	assertStatus(t, w.Code, http.StatusSeeOther)
	if flash := sm.PopString(req.Context(), "flash"); flash != "Review not found" {
		t.Errorf("flash = %q; want %q", flash, "Review not found")
	}
}

func TestApproveReviewBadID(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewAdminHandler(db, testRenderer(t, sm), testReviewCache(t))

	req := requestWithSession(sm, requestWithURLParams(
		httptest.NewRequest("GET", "/admin/approve_review/abc", nil),
		map[string]string{"id": "abc"}))
	w := httptest.NewRecorder()
	h.ApproveReview(w, req)

	assertStatus(t, w.Code, http.StatusSeeOther)
	if flash := sm.PopString(req.Context(), "flash"); flash != "Invalid review ID" {
		t.Errorf("flash = %q; want %q", flash, "Invalid review ID")
	}
}
