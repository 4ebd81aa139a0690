// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rherren/eventsite/internal/model"
)

func TestAPITime(t *testing.T) {
	h := NewAPIHandler(testDB(t))

	before := time.Now()
	w := httptest.NewRecorder()
	h.Time(w, httptest.NewRequest("GET", "/api/time", nil))
	after := time.Now()

	assertStatus(t, w.Code, http.StatusOK)

	var resp struct {
		Datetime  string  `json:"datetime"`
		Timestamp float64 `json:"timestamp"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	parsed, err := time.ParseInLocation(apiTimestampLayout, resp.Datetime, time.Local)
	if err != nil {
		t.Fatalf("datetime %q does not match layout: %v", resp.Datetime, err)
	}
	if parsed.Before(before.Truncate(time.Second)) || parsed.After(after.Add(time.Second)) {
		t.Errorf("datetime %v outside request window [%v, %v]", parsed, before, after)
	}

	// Both fields must describe the same instant
	fromTimestamp := time.Unix(0, int64(resp.Timestamp*1e9))
	if diff := fromTimestamp.Sub(parsed); math.Abs(diff.Seconds()) > 0.01 {
		t.Errorf("timestamp and datetime differ by %v", diff)
	}
}

func TestAPIUsers(t *testing.T) {
	db := testDB(t)
	h := NewAPIHandler(db)

	createTestUser(t, db, testUser{Username: "rherren", Email: "ryan@example.com", Role: model.RoleAdmin})

	w := httptest.NewRecorder()
	h.Users(w, httptest.NewRequest("GET", "/api/users", nil))

	assertStatus(t, w.Code, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q; want application/json", ct)
	}

	body := w.Body.String()
	if strings.Contains(body, "password") || strings.Contains(body, "argon2") {
		t.Fatalf("response leaks password material: %s", body)
	}

	var users []map[string]any
	if err := json.Unmarshal([]byte(body), &users); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users; want 1", len(users))
	}

	u := users[0]
	for _, field := range []string{"id", "username", "email", "role", "created_at"} {
		if _, ok := u[field]; !ok {
			t.Errorf("user object missing %q: %v", field, u)
		}
	}
	if u["username"] != "rherren" {
		t.Errorf("username = %v", u["username"])
	}
}

func TestAPIUsersEmpty(t *testing.T) {
	h := NewAPIHandler(testDB(t))

	w := httptest.NewRecorder()
	h.Users(w, httptest.NewRequest("GET", "/api/users", nil))

	assertStatus(t, w.Code, http.StatusOK)
	// An empty table is still a JSON array, never null
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %q; want []", body)
	}
}
