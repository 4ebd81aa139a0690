// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/rherren/eventsite/internal/store"
)

// apiTimestampLayout matches the datetime format the site has always
// served: local time with microsecond precision and no zone suffix.
const apiTimestampLayout = "2006-01-02T15:04:05.000000"

// APIHandler serves the JSON API.
type APIHandler struct {
	queries *store.Queries
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(db *sql.DB) *APIHandler {
	return &APIHandler{queries: store.New(db)}
}

// timeResponse is the payload for GET /api/time. Both fields describe
// the same instant.
type timeResponse struct {
	Datetime  string  `json:"datetime"`
	Timestamp float64 `json:"timestamp"`
}

// Time returns the current server time.
func (h *APIHandler) Time(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	writeJSON(w, http.StatusOK, timeResponse{
		Datetime:  now.Format(apiTimestampLayout),
		Timestamp: float64(now.UnixMicro()) / 1e6,
	})
}

// Users lists all registered users. The route is admin-gated; password
// hashes never serialize (see model.User).
func (h *APIHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.queries.ListUsers(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to load users")
		return
	}

	writeJSON(w, http.StatusOK, users)
}
