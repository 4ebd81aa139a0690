// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/rherren/eventsite/internal/cache"
	"github.com/rherren/eventsite/internal/model"
	"github.com/rherren/eventsite/internal/render"
	"github.com/rherren/eventsite/internal/store"
)

// ReviewHandler handles the public review listing and submissions.
type ReviewHandler struct {
	queries     *store.Queries
	renderer    *render.Renderer
	reviewCache *cache.ReviewCache
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(db *sql.DB, renderer *render.Renderer, reviewCache *cache.ReviewCache) *ReviewHandler {
	return &ReviewHandler{
		queries:     store.New(db),
		renderer:    renderer,
		reviewCache: reviewCache,
	}
}

// reviewPageData is the payload for the reviews page template.
type reviewPageData struct {
	Reviews  []model.Review
	Services []string
	Input    reviewInput
	Errors   map[string]string
}

// List renders the reviews page: approved reviews newest first, plus
// the submission form. The listing is served through the cache.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewCache.GetOrLoad(r.Context(), h.queries.ListApprovedReviews)
	if err != nil {
		logAndInternalError(w, "failed to load reviews", "error", err)
		return
	}

	h.renderPage(w, r, reviewPageData{
		Reviews:  reviews,
		Services: model.Services,
	})
}

// Submit handles a new review. Submissions always enter the moderation
// queue unapproved, whatever the form claims.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteReviews) {
		return
	}

	input := parseReviewInput(r.FormValue)

	if errs := input.validate(); len(errs) > 0 {
		reviews, ok := h.reviewCache.Get(r.Context())
		if !ok {
			if reviews, _ = h.queries.ListApprovedReviews(r.Context()); reviews == nil {
				reviews = []model.Review{}
			}
		}
		h.renderPage(w, r, reviewPageData{
			Reviews:  reviews,
			Services: model.Services,
			Input:    input,
			Errors:   errs,
		})
		return
	}

	review, err := h.queries.CreateReview(r.Context(), store.CreateReviewParams{
		Name:      input.Name,
		Rating:    input.Rating,
		Service:   input.Service,
		Comment:   input.Comment,
		Approved:  false,
		CreatedAt: time.Now(),
	})
	if err != nil {
		logAndInternalError(w, "failed to save review", "error", err)
		return
	}

	slog.Info("review submitted for moderation", "review_id", review.ID, "rating", review.Rating)

	flashSuccess(w, r, h.renderer, RouteReviews,
		"Thanks for your review! It will appear once approved.")
}

func (h *ReviewHandler) renderPage(w http.ResponseWriter, r *http.Request, data reviewPageData) {
	if err := h.renderer.Render(w, r, "reviews", render.TemplateData{
		Title: "Customer Reviews",
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "failed to render reviews page", "error", err)
	}
}
