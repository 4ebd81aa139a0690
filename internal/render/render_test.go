package render

import (
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func testTemplatesFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(
			`{{define "base"}}<html><body>{{template "flash" .}}<h1>{{.Title}}</h1>{{template "content" .}}</body></html>{{end}}`)},
		"partials/flash.html": &fstest.MapFile{Data: []byte(
			`{{define "flash"}}{{if .Flash}}<div class="{{.FlashType}}">{{.Flash}}</div>{{end}}{{end}}`)},
		"pages/home.html": &fstest.MapFile{Data: []byte(
			`{{define "content"}}<p>welcome {{.Data}}</p>{{end}}`)},
		"admin/dashboard.html": &fstest.MapFile{Data: []byte(
			`{{define "content"}}<p>admin {{.Data}}</p>{{end}}`)},
	}
}

func TestNewParsesTemplates(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if _, ok := r.templates["home"]; !ok {
		t.Error("expected page template to be registered as 'home'")
	}
	if _, ok := r.templates["admin/dashboard"]; !ok {
		t.Error("expected admin template to be registered as 'admin/dashboard'")
	}
}

func TestRender(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	if err := r.Render(w, req, "home", TemplateData{Title: "Home", Data: "visitor"}); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<h1>Home</h1>") {
		t.Errorf("rendered body missing title: %s", body)
	}
	if !strings.Contains(body, "welcome visitor") {
		t.Errorf("rendered body missing page content: %s", body)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q; want text/html", ct)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	if err := r.Render(w, req, "missing", TemplateData{}); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestTemplateFuncStars(t *testing.T) {
	r := &Renderer{}
	stars := r.templateFuncs()["stars"].(func(int) string)

	if got := stars(5); got != "★★★★★" {
		t.Errorf("stars(5) = %q", got)
	}
	if got := stars(2); got != "★★☆☆☆" {
		t.Errorf("stars(2) = %q", got)
	}
}
