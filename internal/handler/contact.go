// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/rherren/eventsite/internal/model"
	"github.com/rherren/eventsite/internal/render"
	"github.com/rherren/eventsite/internal/store"
)

// ContactHandler handles the contact form.
type ContactHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(db *sql.DB, renderer *render.Renderer) *ContactHandler {
	return &ContactHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// contactFormData is the payload for the contact page template.
type contactFormData struct {
	Services []string
	Input    contactInput
	Errors   map[string]string
}

// Form renders the contact page.
func (h *ContactHandler) Form(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, contactFormData{Services: model.Services})
}

// Submit handles the contact form submission. Invalid input re-renders
// the form with field errors and the visitor's values; valid input is
// stored and answered with a redirect so a refresh cannot double-post.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteContact) {
		return
	}

	input := parseContactInput(r.FormValue)

	if errs := input.validate(); len(errs) > 0 {
		h.renderForm(w, r, contactFormData{
			Services: model.Services,
			Input:    input,
			Errors:   errs,
		})
		return
	}

	contact, err := h.queries.CreateContact(r.Context(), store.CreateContactParams{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Service:   input.Service,
		EventDate: input.EventDate,
		Message:   input.Message,
		CreatedAt: time.Now(),
	})
	if err != nil {
		logAndInternalError(w, "failed to save contact message", "error", err)
		return
	}

	slog.Info("contact message received", "contact_id", contact.ID, "service", contact.Service)

	flashSuccess(w, r, h.renderer, RouteContact,
		"Thanks for reaching out! We will get back to you shortly.")
}

func (h *ContactHandler) renderForm(w http.ResponseWriter, r *http.Request, data contactFormData) {
	if err := h.renderer.Render(w, r, "contact", render.TemplateData{
		Title: "Contact Us",
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "failed to render contact page", "error", err)
	}
}
