// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// apiError is the JSON error envelope used by middleware-level
// rejections of API requests.
type apiError struct {
	Error string `json:"error"`
}

// WriteAPIError writes a JSON error response with the given status.
func WriteAPIError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiError{Error: message}); err != nil {
		slog.Error("failed to encode API error response", "error", err)
	}
}
