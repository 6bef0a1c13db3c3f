package browser_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// pngPixel is a 1x1 transparent PNG used as an upload fixture.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func writeFixture(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, pngPixel, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// TestRegistration_WizardCompletes walks the full three-step wizard through a
// real browser and verifies the school lands on its profile.
func TestRegistration_WizardCompletes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)
	badgePath := writeFixture(t, app.tmpDir, "badge.png")
	photoPath := writeFixture(t, app.tmpDir, "photo.png")

	if _, err := page.Goto(app.BaseURL + "/registration"); err != nil {
		t.Fatalf("failed to open wizard: %v", err)
	}

	// Step 1: school info
	page.Locator("input[name=school_name]").Fill("Hilltop College")
	page.Locator("input[name=office_contact]").Fill("0700123456")
	page.Locator("select[name=region]").SelectOption(playwright.SelectOptionValues{Values: &[]string{"Central"}})
	page.Locator("input[name=district]").Fill("Kampala")
	page.Locator("input[name=school_badge]").SetInputFiles(badgePath)
	if err := page.Locator("button[value=next]").Click(); err != nil {
		t.Fatalf("failed to advance past step one: %v", err)
	}

	// Step 2: admin info
	if err := page.Locator("input[name=admin_name]").WaitFor(); err != nil {
		t.Fatalf("step two did not render: %v", err)
	}
	page.Locator("input[name=admin_name]").Fill("Jane Okello")
	page.Locator("input[name=admin_contact]").Fill("0700123457")
	page.Locator("input[name=admin_email]").Fill("head@hilltop.ug")
	page.Locator("select[name=admin_role]").SelectOption(playwright.SelectOptionValues{Values: &[]string{"Head Teacher"}})
	page.Locator("select[name=admin_education]").SelectOption(playwright.SelectOptionValues{Values: &[]string{"Bachelor's Degree"}})
	page.Locator("input[name=admin_password]").Fill("longenough1")
	page.Locator("input[name=admin_confirm_password]").Fill("longenough1")
	page.Locator("input[name=admin_photo]").SetInputFiles(photoPath)
	if err := page.Locator("button[value=next]").Click(); err != nil {
		t.Fatalf("failed to advance past step two: %v", err)
	}

	// Step 3: review, accept terms, submit
	if err := page.Locator("input[name=terms]").WaitFor(); err != nil {
		t.Fatalf("review step did not render: %v", err)
	}
	page.Locator("input[name=terms]").Check()
	if err := page.Locator("button[value=submit]").Click(); err != nil {
		t.Fatalf("failed to submit: %v", err)
	}

	if err := page.WaitForURL(app.BaseURL+"/profile/**", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("submission did not land on the profile: %v", err)
	}
	content, _ := page.Content()
	if !strings.Contains(content, "Hilltop College") {
		t.Error("school name missing from profile page")
	}
	if !strings.Contains(content, "Under Review") {
		t.Error("review status missing from profile page")
	}

	// The school row is persisted for the new account.
	count, err := app.Stores.SchoolStore.Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count schools: %v", err)
	}
	if count != 1 {
		t.Errorf("schools persisted = %d, want 1", count)
	}
}

// TestRegistration_StepOneValidation submits an empty first step and expects
// inline errors with the cursor unmoved.
func TestRegistration_StepOneValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/registration"); err != nil {
		t.Fatalf("failed to open wizard: %v", err)
	}
	if err := page.Locator("button[value=next]").Click(); err != nil {
		t.Fatalf("failed to click next: %v", err)
	}

	if err := page.Locator("input[name=school_name]").WaitFor(); err != nil {
		t.Fatalf("step one did not re-render: %v", err)
	}
	content, _ := page.Content()
	for _, want := range []string{"field-error"} {
		if !strings.Contains(content, want) {
			t.Errorf("%q missing after empty submit", want)
		}
	}
}

// TestSignin_RoundTrip signs a seeded school in and out through the browser.
func TestSignin_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)
	app.seedSchool(t, "head@seeded.ug", "longenough1")

	app.signin(t, page, "head@seeded.ug", "longenough1")

	content, _ := page.Content()
	if !strings.Contains(content, "Browser Test School") {
		t.Error("school name missing after sign-in")
	}

	if err := page.Locator("button:has-text('Sign Out')").Click(); err != nil {
		t.Fatalf("failed to sign out: %v", err)
	}
	if err := page.WaitForURL(app.BaseURL+"/", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("sign-out did not land on home: %v", err)
	}
}
