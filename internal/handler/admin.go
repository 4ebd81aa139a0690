// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rherren/eventsite/internal/cache"
	"github.com/rherren/eventsite/internal/middleware"
	"github.com/rherren/eventsite/internal/model"
	"github.com/rherren/eventsite/internal/render"
	"github.com/rherren/eventsite/internal/store"
)

// AdminHandler handles the admin dashboard and moderation actions.
type AdminHandler struct {
	queries     *store.Queries
	renderer    *render.Renderer
	reviewCache *cache.ReviewCache
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer, reviewCache *cache.ReviewCache) *AdminHandler {
	return &AdminHandler{
		queries:     store.New(db),
		renderer:    renderer,
		reviewCache: reviewCache,
	}
}

// dashboardData is the payload for the admin dashboard template.
type dashboardData struct {
	User           *model.User
	Users          []model.User
	Contacts       []model.Contact
	PendingReviews []model.Review
	ContactCount   int64
	PendingCount   int64
}

// Dashboard renders the admin overview: registered users, contact
// submissions and the review moderation queue.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.queries.ListUsers(ctx)
	if err != nil {
		logAndInternalError(w, "failed to load users", "error", err)
		return
	}

	contacts, err := h.queries.ListContacts(ctx)
	if err != nil {
		logAndInternalError(w, "failed to load contacts", "error", err)
		return
	}

	pending, err := h.queries.ListPendingReviews(ctx)
	if err != nil {
		logAndInternalError(w, "failed to load pending reviews", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/dashboard", render.TemplateData{
		Title: "Dashboard",
		Data: dashboardData{
			User:           middleware.GetUser(ctx),
			Users:          users,
			Contacts:       contacts,
			PendingReviews: pending,
			ContactCount:   int64(len(contacts)),
			PendingCount:   int64(len(pending)),
		},
	}); err != nil {
		logAndInternalError(w, "failed to render dashboard", "error", err)
	}
}

// ApproveReview publishes a pending review. Approving an already
// approved review is a no-op; approval is never reversed.
func (h *AdminHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		flashError(w, r, h.renderer, RouteAdmin, "Invalid review ID")
		return
	}

	review, err := h.queries.GetReviewByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			flashError(w, r, h.renderer, RouteAdmin, "Review not found")
			return
		}
		logAndInternalError(w, "failed to load review", "error", err, "review_id", id)
		return
	}

	if !review.Approved {
		if err := h.queries.ApproveReview(r.Context(), id); err != nil {
			logAndInternalError(w, "failed to approve review", "error", err, "review_id", id)
			return
		}

		// Drop the cached public listing so the review shows up now
		h.reviewCache.Invalidate(r.Context())

		slog.Info("review approved", "review_id", id)
	}

	flashSuccess(w, r, h.renderer, RouteAdmin, "Review by "+review.Name+" approved.")
}
