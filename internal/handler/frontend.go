// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/rherren/eventsite/internal/model"
	"github.com/rherren/eventsite/internal/render"
)

// FrontendHandler serves the public informational pages. Page copy is
// authored as embedded markdown and converted to HTML once at startup.
type FrontendHandler struct {
	renderer *render.Renderer
	content  map[string]template.HTML
}

// NewFrontendHandler creates a FrontendHandler, rendering all markdown
// files under contentFS.
func NewFrontendHandler(renderer *render.Renderer, contentFS fs.FS) (*FrontendHandler, error) {
	content, err := renderMarkdownContent(contentFS)
	if err != nil {
		return nil, fmt.Errorf("rendering page content: %w", err)
	}

	return &FrontendHandler{
		renderer: renderer,
		content:  content,
	}, nil
}

// renderMarkdownContent converts every .md file in the FS to HTML,
// keyed by filename without extension.
func renderMarkdownContent(contentFS fs.FS) (map[string]template.HTML, error) {
	md := goldmark.New(
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
	)

	content := make(map[string]template.HTML)

	entries, err := fs.ReadDir(contentFS, ".")
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || len(name) < 4 || name[len(name)-3:] != ".md" {
			continue
		}

		src, err := fs.ReadFile(contentFS, name)
		if err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("converting %s: %w", name, err)
		}

		// Content is authored by us, not visitors, so the HTML is
		// trusted as-is.
		content[name[:len(name)-3]] = template.HTML(buf.String())
	}

	return content, nil
}

// pageData is the payload for the informational page templates.
type pageData struct {
	Content  template.HTML
	Services []string
}

// Home renders the landing page.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "home", "Herren Events", pageData{
		Content:  h.content["home"],
		Services: model.Services,
	})
}

// About renders the about page.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "about", "About Us", pageData{
		Content: h.content["about"],
	})
}

// Gallery renders the photo gallery page.
func (h *FrontendHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "gallery", "Gallery", pageData{})
}

// Services renders the services overview page.
func (h *FrontendHandler) Services(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "services", "Our Services", pageData{
		Content:  h.content["services"],
		Services: model.Services,
	})
}

func (h *FrontendHandler) renderPage(w http.ResponseWriter, r *http.Request, name, title string, data pageData) {
	if err := h.renderer.Render(w, r, name, render.TemplateData{
		Title: title,
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "failed to render page", "page", name, "error", err)
	}
}
