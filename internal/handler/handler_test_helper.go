// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"testing/fstest"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	_ "modernc.org/sqlite"

	"github.com/rherren/eventsite/internal/cache"
	"github.com/rherren/eventsite/internal/model"
	"github.com/rherren/eventsite/internal/render"
	"github.com/rherren/eventsite/internal/store"
)

// testDB creates an in-memory SQLite database with the site schema.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	schema := `
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			service TEXT NOT NULL DEFAULT '',
			event_date TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE reviews (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			service TEXT NOT NULL,
			comment TEXT NOT NULL,
			approved BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}

	return db
}

// testSessionManager creates a session manager for testing.
func testSessionManager(t *testing.T) *scs.SessionManager {
	t.Helper()
	sm := scs.New()
	sm.Lifetime = 24 * time.Hour
	return sm
}

// testRenderer creates a renderer with minimal templates covering
// every page the handlers render.
func testRenderer(t *testing.T, sm *scs.SessionManager) *render.Renderer {
	t.Helper()

	page := func() *fstest.MapFile {
		return &fstest.MapFile{Data: []byte(`{{define "content"}}page{{end}}`)}
	}

	templatesFS := fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(
			`{{define "base"}}<html><body>` +
				`{{if .Flash}}<div class="flash {{.FlashType}}">{{.Flash}}</div>{{end}}` +
				`<h1>{{.Title}}</h1>{{template "content" .}}</body></html>{{end}}`)},
		"pages/home.html":           page(),
		"pages/about.html":          page(),
		"pages/gallery.html":        page(),
		"pages/services.html":       page(),
		"pages/login.html":          page(),
		"pages/contact.html": &fstest.MapFile{Data: []byte(
			`{{define "content"}}{{range $f, $m := .Data.Errors}}<span class="error">{{$m}}</span>{{end}}` +
				`<form><input name="name" value="{{.Data.Input.Name}}"></form>{{end}}`)},
		"pages/reviews.html": &fstest.MapFile{Data: []byte(
			`{{define "content"}}{{range .Data.Reviews}}<div class="review">{{.Name}}: {{.Comment}}</div>{{end}}` +
				`{{range $f, $m := .Data.Errors}}<span class="error">{{$m}}</span>{{end}}{{end}}`)},
		"admin/dashboard.html": &fstest.MapFile{Data: []byte(
			`{{define "content"}}pending={{.Data.PendingCount}} contacts={{.Data.ContactCount}}{{end}}`)},
	}

	r, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		IsDev:          true,
	})
	if err != nil {
		t.Fatalf("failed to create test renderer: %v", err)
	}
	return r
}

// testReviewCache creates a review cache over a fresh memory backend.
func testReviewCache(t *testing.T) *cache.ReviewCache {
	t.Helper()
	backend := cache.NewMemoryCache(time.Minute, 0)
	t.Cleanup(func() { _ = backend.Close() })
	return cache.NewReviewCache(backend, time.Minute)
}

// testUser describes a user to insert.
type testUser struct {
	Username     string
	Email        string
	Role         string
	PasswordHash string
}

// createTestUser inserts a user and returns the stored record.
func createTestUser(t *testing.T, db *sql.DB, user testUser) model.User {
	t.Helper()

	if user.PasswordHash == "" {
		// Hash of "password123" with the current parameters
		user.PasswordHash = "$argon2id$v=19$m=19456,t=2,p=1$c29tZXNhbHQxMjM0NTY$u1BFU3ZZWYvxFJjBNy5iZWtYOVGCsXf7M2oZ5cqlAGU"
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}

	created, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return created
}

// createTestReview inserts a review and returns the stored record.
func createTestReview(t *testing.T, db *sql.DB, name string, approved bool) model.Review {
	t.Helper()

	review, err := store.New(db).CreateReview(context.Background(), store.CreateReviewParams{
		Name:      name,
		Rating:    5,
		Service:   model.ServiceWedding,
		Comment:   "Everything went perfectly on the day.",
		Approved:  approved,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to create test review: %v", err)
	}
	return review
}

// requestWithURLParams adds chi URL parameters to a request.
func requestWithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// requestWithSession wraps a request with session context.
func requestWithSession(sm *scs.SessionManager, r *http.Request) *http.Request {
	ctx, err := sm.Load(r.Context(), "")
	if err != nil {
		return r
	}
	return r.WithContext(ctx)
}

// assertStatus checks the response status code.
func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status = %d; want %d", got, want)
	}
}
