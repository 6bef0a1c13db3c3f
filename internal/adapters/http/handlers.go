package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"usra/internal/adapters/http/middleware"
	"usra/internal/domain/content"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// templatesDir is resolved relative to the working directory. Tests override
// it because they run from the package directory.
var templatesDir = "internal/adapters/http/templates"

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	email := ""
	if ok {
		role = sess.Role
		email = sess.Email
	}

	funcMap := template.FuncMap{
		"currentEmail": func() string { return email },
		"isLoggedIn":   func() bool { return role != "" },
		"csrfToken":    func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// handleHome handles GET / — the landing page with hero, about, and the
// chairman's message.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	// Count failures degrade to 0; the page still renders.
	memberSchools, err := stores.SchoolStore.Count(r.Context())
	if err != nil {
		slog.Warn("content_event", "event", "school_count_unavailable", "error", err)
	}
	renderTemplate(w, r, "home.html", map[string]any{
		"About":           content.AboutMarkdown,
		"ChairmanMessage": content.ChairmanMessageMarkdown,
		"UpcomingEvents":  content.FilterEvents(content.CategoryAll, content.TimelineUpcoming),
		"MemberSchools":   memberSchools,
	})
}

// handleEvents handles GET /events with category and timeline filters.
func handleEvents(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = content.CategoryAll
	}
	timeline := r.URL.Query().Get("timeline")
	if timeline == "" {
		timeline = content.TimelineUpcoming
	}

	renderTemplate(w, r, "events.html", map[string]any{
		"Events":         content.FilterEvents(category, timeline),
		"Categories":     content.Categories,
		"Timelines":      content.Timelines,
		"ActiveCategory": category,
		"ActiveTimeline": timeline,
	})
}

// handleLeadership handles GET /leadership.
func handleLeadership(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "leadership.html", map[string]any{
		"Committees": content.Leadership,
	})
}

// handleWorkplan handles GET /workplan.
func handleWorkplan(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "workplan.html", map[string]any{
		"Items": content.Workplan,
	})
}

// handleMedicalFund handles GET /medical-fund.
func handleMedicalFund(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "medical_fund.html", map[string]any{
		"Body": content.MedicalFundMarkdown,
	})
}

// handlePhotos handles GET /photos.
func handlePhotos(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "photos.html", map[string]any{
		"Collections": content.PhotoCollections,
	})
}
