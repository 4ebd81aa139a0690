// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rherren/eventsite/internal/auth"
	"github.com/rherren/eventsite/internal/middleware"
	"github.com/rherren/eventsite/internal/model"
)

func TestLoginSuccess(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)

	hash, err := auth.HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	admin := createTestUser(t, db, testUser{
		Username:     "rherren",
		Email:        "ryan@example.com",
		Role:         model.RoleAdmin,
		PasswordHash: hash,
	})

	h := NewAuthHandler(db, testRenderer(t, sm), sm, nil)

	form := url.Values{
		"username": {"rherren"},
		"password": {"correct-horse-battery"},
	}
	req := requestWithSession(sm, postForm("/login", form))
	w := httptest.NewRecorder()
	h.Login(w, req)

	assertStatus(t, w.Code, http.StatusSeeOther)
	if loc := w.Header().Get("Location"); loc != RouteAdmin {
		t.Errorf("Location = %q; want %q", loc, RouteAdmin)
	}

	if got := sm.GetInt64(req.Context(), middleware.SessionKeyUserID); got != admin.ID {
		t.Errorf("session user_id = %d; want %d", got, admin.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)

	hash, err := auth.HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	createTestUser(t, db, testUser{
		Username:     "rherren",
		Email:        "ryan@example.com",
		Role:         model.RoleAdmin,
		PasswordHash: hash,
	})

	h := NewAuthHandler(db, testRenderer(t, sm), sm, nil)

	form := url.Values{
		"username": {"rherren"},
		"password": {"wrong"},
	}
	req := requestWithSession(sm, postForm("/login", form))
	w := httptest.NewRecorder()
	h.Login(w, req)

	assertStatus(t, w.Code, http.StatusSeeOther)
	if loc := w.Header().Get("Location"); loc != RouteLogin {
		t.Errorf("Location = %q; want %q", loc, RouteLogin)
	}
	if got := sm.GetInt64(req.Context(), middleware.SessionKeyUserID); got != 0 {
		t.Errorf("session user_id = %d; want unset", got)
	}
	if flash := sm.PopString(req.Context(), "flash"); flash != invalidCredentialsMsg {
		t.Errorf("flash = %q; want %q", flash, invalidCredentialsMsg)
	}
}

func TestLoginUnknownUserSameMessage(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewAuthHandler(db, testRenderer(t, sm), sm, nil)

	form := url.Values{
		"username": {"nobody"},
		"password": {"whatever123"},
	}
	req := requestWithSession(sm, postForm("/login", form))
	w := httptest.NewRecorder()
	h.Login(w, req)

	assertStatus(t, w.Code, http.StatusSeeOther)
	// Same generic message as a wrong password, no account probing
	if flash := sm.PopString(req.Context(), "flash"); flash != invalidCredentialsMsg {
		t.Errorf("flash = %q; want %q", flash, invalidCredentialsMsg)
	}
}

func TestLoginMissingFields(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewAuthHandler(db, testRenderer(t, sm), sm, nil)

	req := requestWithSession(sm, postForm("/login", url.Values{"username": {"rherren"}}))
	w := httptest.NewRecorder()
	h.Login(w, req)

	assertStatus(t, w.Code, http.StatusSeeOther)
	if loc := w.Header().Get("Location"); loc != RouteLogin {
		t.Errorf("Location = %q; want %q", loc, RouteLogin)
	}
}

func TestLogout(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewAuthHandler(db, testRenderer(t, sm), sm, nil)

	req := requestWithSession(sm, httptest.NewRequest("GET", "/logout", nil))
	sm.Put(req.Context(), middleware.SessionKeyUserID, int64(1))

	w := httptest.NewRecorder()
	h.Logout(w, req)

	assertStatus(t, w.Code, http.StatusSeeOther)
	if loc := w.Header().Get("Location"); loc != RouteRoot {
		t.Errorf("Location = %q; want %q", loc, RouteRoot)
	}
	if got := sm.GetInt64(req.Context(), middleware.SessionKeyUserID); got != 0 {
		t.Errorf("session user_id = %d after logout; want unset", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"15m0s", "15 minutes"},
		{"1m0s", "1 minute"},
		{"30s", "30 seconds"},
		{"1s", "1 second"},
	}
	for _, tt := range tests {
		d, err := time.ParseDuration(tt.in)
		if err != nil {
			t.Fatalf("bad test duration %q: %v", tt.in, err)
		}
		if got := formatDuration(d); got != tt.want {
			t.Errorf("formatDuration(%s) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
