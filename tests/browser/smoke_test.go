package browser_test

import (
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestSmoke_PublicPages verifies every public route loads without errors.
func TestSmoke_PublicPages(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)

	routes := []struct {
		path     string
		wantText string
	}{
		{path: "/", wantText: "Uganda Schools Rugby Association"},
		{path: "/events", wantText: "Events Calendar"},
		{path: "/leadership", wantText: "Executive Committee"},
		{path: "/workplan", wantText: "Annual Workplan"},
		{path: "/medical-fund", wantText: "Medical Fund"},
		{path: "/photos", wantText: "Photo Gallery"},
		{path: "/registration", wantText: "School Registration"},
		{path: "/signin", wantText: "Sign In"},
	}

	for _, route := range routes {
		route := route
		t.Run(route.path, func(t *testing.T) {
			page := app.newPage(t)
			resp, err := page.Goto(app.BaseURL + route.path)
			if err != nil {
				t.Fatalf("failed to navigate to %s: %v", route.path, err)
			}
			if resp.Status() != 200 {
				t.Fatalf("%s: got status %d, want 200", route.path, resp.Status())
			}
			content, err := page.Content()
			if err != nil {
				t.Fatalf("failed to read content: %v", err)
			}
			if !strings.Contains(content, route.wantText) {
				t.Errorf("%s: %q not found on page", route.path, route.wantText)
			}
		})
	}
}

// TestSmoke_EventFilters clicks through the timeline filters on the events page.
func TestSmoke_EventFilters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/events?timeline=past"); err != nil {
		t.Fatalf("failed to navigate: %v", err)
	}
	content, _ := page.Content()
	if !strings.Contains(content, "FEASSA Games") {
		t.Error("past events missing from past filter")
	}
	if strings.Contains(content, "Independence Cup") {
		t.Error("upcoming event shown under past filter")
	}

	if _, err := page.Goto(app.BaseURL + "/events?timeline=all"); err != nil {
		t.Fatalf("failed to navigate: %v", err)
	}
	content, _ = page.Content()
	if !strings.Contains(content, "FEASSA Games") || !strings.Contains(content, "Independence Cup") {
		t.Error("all filter should show past and upcoming events")
	}
}

// TestSmoke_NoConsoleErrors verifies pages load without JavaScript errors.
func TestSmoke_NoConsoleErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	var errors []string
	page.On("console", func(msg playwright.ConsoleMessage) {
		if msg.Type() == "error" {
			errors = append(errors, msg.Text())
		}
	})

	for _, path := range []string{"/", "/events", "/registration", "/signin"} {
		page.Goto(app.BaseURL + path)
		page.WaitForTimeout(500)
	}

	if len(errors) > 0 {
		t.Errorf("console errors found: %v", errors)
	}
}
