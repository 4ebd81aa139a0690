// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// CSRF protection, rate limiting and security headers.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/rherren/eventsite/internal/model"
	"github.com/rherren/eventsite/internal/store"
)

type contextKey string

const userContextKey contextKey = "user"

// SessionKeyUserID is the session key holding the authenticated user's ID.
const SessionKeyUserID = "user_id"

// Auth requires an authenticated session. Unauthenticated requests are
// redirected to the login page.
func Auth(sessionManager *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionManager.GetInt64(r.Context(), SessionKeyUserID)
			if userID == 0 {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoadUser loads the authenticated user from the database into the
// request context. Requests with a stale session (user deleted) get the
// session destroyed and continue anonymously.
func LoadUser(sessionManager *scs.SessionManager, queries *store.Queries) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionManager.GetInt64(r.Context(), SessionKeyUserID)
			if userID == 0 {
				next.ServeHTTP(w, r)
				return
			}

			user, err := queries.GetUserByID(r.Context(), userID)
			if err != nil {
				slog.Warn("session references unknown user, destroying session",
					"user_id", userID)
				if err := sessionManager.Destroy(r.Context()); err != nil {
					slog.Error("failed to destroy stale session", "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser returns the authenticated user from the request context, or
// nil when the request is anonymous.
func GetUser(ctx context.Context) *model.User {
	user, ok := ctx.Value(userContextKey).(*model.User)
	if !ok {
		return nil
	}
	return user
}

// RequireAdmin allows only users with the admin role. Non-admin page
// requests are redirected home with a 303; use RequireAdminAPI for
// JSON endpoints.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if !model.IsAdminRole(user.Role) {
			slog.Warn("non-admin user denied admin page",
				"user_id", user.ID, "path", r.URL.Path)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdminAPI allows only admin users and answers violations with
// a 403 JSON error instead of a redirect. Anonymous and non-admin
// requests get the same status.
func RequireAdminAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		if user == nil {
			WriteAPIError(w, http.StatusForbidden, "admin access required")
			return
		}
		if !model.IsAdminRole(user.Role) {
			slog.Warn("non-admin user denied admin API",
				"user_id", user.ID, "path", r.URL.Path)
			WriteAPIError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
