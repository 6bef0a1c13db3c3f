package registration

// Step is the wizard step cursor.
type Step int

// Wizard steps, in order.
const (
	StepSchoolInfo Step = 1
	StepAdminInfo  Step = 2
	StepReview     Step = 3
)

// Status tracks where the wizard is in its lifecycle beyond the step cursor.
type Status string

// Wizard statuses.
const (
	StatusEditing    Status = "editing"
	StatusSubmitting Status = "submitting"
	StatusSubmitted  Status = "submitted"
)

// Message shown when submission is attempted without accepting terms.
const msgTermsRequired = "You must accept the terms and conditions before submitting"

// Wizard owns the three-step registration form: the draft being edited, the
// step cursor, and the errors surfaced on the last failed transition.
type Wizard struct {
	Step        Step
	Status      Status
	Draft       Draft
	FieldErrors map[string]string
	Message     string
}

// NewWizard creates a wizard positioned at the School Info step with an
// empty draft.
func NewWizard() *Wizard {
	return &Wizard{
		Step:        StepSchoolInfo,
		Status:      StatusEditing,
		FieldErrors: map[string]string{},
	}
}

// Next attempts a forward transition. The transition is permitted only when
// the current step validates cleanly; otherwise the cursor stays put and the
// field errors are retained for display.
// PRE: Step is SchoolInfo or AdminInfo
// POST: Returns true and advances on success; false with FieldErrors set otherwise
func (w *Wizard) Next() bool {
	if w.Step != StepSchoolInfo && w.Step != StepAdminInfo {
		return false
	}
	errs := ValidateStep(&w.Draft, w.Step)
	if len(errs) > 0 {
		w.FieldErrors = errs
		return false
	}
	w.FieldErrors = map[string]string{}
	w.Message = ""
	w.Step++
	return true
}

// Back moves to the previous step unconditionally.
// POST: Cursor decremented, never below SchoolInfo; errors cleared
func (w *Wizard) Back() {
	if w.Step > StepSchoolInfo {
		w.Step--
	}
	w.FieldErrors = map[string]string{}
	w.Message = ""
}

// BeginSubmit guards the Review → Submitting transition: admin info must
// still validate and the terms flag must be set. On a terms failure the
// cursor does not move and a message is surfaced instead.
// PRE: Step is Review
// POST: Returns true with Status=Submitting, or false with Message/FieldErrors set
func (w *Wizard) BeginSubmit() bool {
	if w.Step != StepReview {
		return false
	}
	errs := ValidateStep(&w.Draft, StepAdminInfo)
	if len(errs) > 0 {
		w.FieldErrors = errs
		w.Message = "Please correct the administrator details before submitting"
		return false
	}
	if !w.Draft.TermsAccepted {
		w.Message = msgTermsRequired
		return false
	}
	w.FieldErrors = map[string]string{}
	w.Message = ""
	w.Status = StatusSubmitting
	return true
}

// FinishSubmit marks the wizard as successfully submitted.
// PRE: Status is Submitting
func (w *Wizard) FinishSubmit() {
	w.Status = StatusSubmitted
}

// FailSubmit returns control to the Review step with the failure message
// retained for display. The step cursor does not advance on failure.
// PRE: Status is Submitting
// POST: Status=Editing, Step=Review, Message set
func (w *Wizard) FailSubmit(msg string) {
	w.Status = StatusEditing
	w.Step = StepReview
	w.Message = msg
}
