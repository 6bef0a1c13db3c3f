package registration

import "testing"

func wizardAtReview(t *testing.T) *Wizard {
	t.Helper()
	w := NewWizard()
	w.Draft = validStepTwoDraft()
	if !w.Next() || !w.Next() {
		t.Fatalf("could not advance to review: errors=%v", w.FieldErrors)
	}
	if w.Step != StepReview {
		t.Fatalf("step = %d, want review", w.Step)
	}
	return w
}

func TestWizard_StartsAtSchoolInfo(t *testing.T) {
	w := NewWizard()
	if w.Step != StepSchoolInfo {
		t.Errorf("step = %d, want 1", w.Step)
	}
	if w.Status != StatusEditing {
		t.Errorf("status = %q, want editing", w.Status)
	}
}

func TestWizard_NextBlockedByInvalidStep(t *testing.T) {
	w := NewWizard()
	if w.Next() {
		t.Fatal("advanced with an empty draft")
	}
	if w.Step != StepSchoolInfo {
		t.Errorf("step = %d, cursor should not move", w.Step)
	}
	if len(w.FieldErrors) == 0 {
		t.Error("field errors not retained")
	}
}

func TestWizard_NextAdvancesWhenValid(t *testing.T) {
	w := NewWizard()
	w.Draft = validStepOneDraft()
	if !w.Next() {
		t.Fatalf("did not advance: %v", w.FieldErrors)
	}
	if w.Step != StepAdminInfo {
		t.Errorf("step = %d, want 2", w.Step)
	}
	if len(w.FieldErrors) != 0 {
		t.Errorf("stale errors: %v", w.FieldErrors)
	}
}

func TestWizard_BackIsUnconditional(t *testing.T) {
	w := NewWizard()
	w.Draft = validStepOneDraft()
	w.Next()

	// Invalidate the draft, then go back: Back never validates.
	w.Draft.SchoolName = ""
	w.Back()
	if w.Step != StepSchoolInfo {
		t.Errorf("step = %d, want 1", w.Step)
	}

	w.Back()
	if w.Step != StepSchoolInfo {
		t.Errorf("step = %d, Back must not go below 1", w.Step)
	}
}

func TestWizard_BeginSubmitRequiresTerms(t *testing.T) {
	w := wizardAtReview(t)
	w.Draft.TermsAccepted = false

	if w.BeginSubmit() {
		t.Fatal("submit permitted without accepting terms")
	}
	if w.Step != StepReview {
		t.Errorf("step = %d, cursor must stay on review", w.Step)
	}
	if w.Status != StatusEditing {
		t.Errorf("status = %q, want editing", w.Status)
	}
	if w.Message == "" {
		t.Error("terms message not surfaced")
	}
}

func TestWizard_BeginSubmitRevalidatesAdminInfo(t *testing.T) {
	w := wizardAtReview(t)
	w.Draft.TermsAccepted = true
	w.Draft.AdminEmail = ""

	if w.BeginSubmit() {
		t.Fatal("submit permitted with invalid admin info")
	}
	if w.FieldErrors["admin_email"] == "" {
		t.Errorf("errors = %v, want admin_email", w.FieldErrors)
	}
}

func TestWizard_SubmitLifecycle(t *testing.T) {
	w := wizardAtReview(t)
	w.Draft.TermsAccepted = true

	if !w.BeginSubmit() {
		t.Fatalf("submit blocked: %v %q", w.FieldErrors, w.Message)
	}
	if w.Status != StatusSubmitting {
		t.Errorf("status = %q, want submitting", w.Status)
	}

	w.FinishSubmit()
	if w.Status != StatusSubmitted {
		t.Errorf("status = %q, want submitted", w.Status)
	}
}

func TestWizard_FailSubmitReturnsToReview(t *testing.T) {
	w := wizardAtReview(t)
	w.Draft.TermsAccepted = true
	w.BeginSubmit()

	w.FailSubmit("registration failed at account: email taken")
	if w.Status != StatusEditing {
		t.Errorf("status = %q, want editing", w.Status)
	}
	if w.Step != StepReview {
		t.Errorf("step = %d, want review", w.Step)
	}
	if w.Message == "" {
		t.Error("failure message not retained")
	}
}
