// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func testContentFS() fstest.MapFS {
	return fstest.MapFS{
		"home.md":     &fstest.MapFile{Data: []byte("# Welcome\n\nEvents done right.")},
		"about.md":    &fstest.MapFile{Data: []byte("Family business since 2020.")},
		"services.md": &fstest.MapFile{Data: []byte("- Weddings\n- Corporate events")},
	}
}

func TestFrontendPages(t *testing.T) {
	sm := testSessionManager(t)
	h, err := NewFrontendHandler(testRenderer(t, sm), testContentFS())
	if err != nil {
		t.Fatalf("NewFrontendHandler error: %v", err)
	}

	tests := []struct {
		name    string
		handler http.HandlerFunc
		title   string
	}{
		{"home", h.Home, "Herren Events"},
		{"about", h.About, "About Us"},
		{"gallery", h.Gallery, "Gallery"},
		{"services", h.Services, "Our Services"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithSession(sm, httptest.NewRequest("GET", "/", nil))
			w := httptest.NewRecorder()
			tt.handler(w, req)

			assertStatus(t, w.Code, http.StatusOK)
			if !strings.Contains(w.Body.String(), tt.title) {
				t.Errorf("body missing title %q", tt.title)
			}
		})
	}
}

func TestMarkdownContentRendered(t *testing.T) {
	content, err := renderMarkdownContent(testContentFS())
	if err != nil {
		t.Fatalf("renderMarkdownContent error: %v", err)
	}

	if !strings.Contains(string(content["home"]), "<h1") {
		t.Errorf("home heading not rendered: %s", content["home"])
	}
	if !strings.Contains(string(content["services"]), "<li>Weddings</li>") {
		t.Errorf("services list not rendered: %s", content["services"])
	}
	if _, ok := content["missing"]; ok {
		t.Error("unexpected content entry")
	}
}
