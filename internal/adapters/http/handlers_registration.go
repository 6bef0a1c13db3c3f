package web

import (
	"errors"
	"io"
	"net/http"

	"usra/internal/application/orchestrators"
	"usra/internal/domain/registration"
)

// maxUploadBytes caps the multipart form size for wizard submissions.
const maxUploadBytes = 32 << 20

// handleRegistration handles GET and POST /registration — the three-step
// school registration wizard. The draft lives server-side; every POST carries
// an action (next, back, submit, clear file) plus the current step's fields.
func handleRegistration(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		wiz, err := wizardForRequest(w, r)
		if err != nil {
			internalError(w, err)
			return
		}
		renderWizard(w, r, wiz)
	case http.MethodPost:
		handleRegistrationPost(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func renderWizard(w http.ResponseWriter, r *http.Request, wiz *registration.Wizard) {
	data := map[string]any{
		"Wizard":          wiz,
		"Draft":           &wiz.Draft,
		"Step":            int(wiz.Step),
		"FieldErrors":     wiz.FieldErrors,
		"Message":         wiz.Message,
		"Regions":         registration.Regions,
		"AdminRoles":      registration.AdminRoles,
		"EducationLevels": registration.EducationLevels,
		"StrengthScore":   registration.PasswordStrength(wiz.Draft.Password),
		"StrengthLabel":   registration.PasswordStrengthLabel(wiz.Draft.Password),
	}
	if wiz.Draft.Badge != nil {
		data["BadgePreview"] = wiz.Draft.Badge.PreviewDataURI()
		data["BadgeName"] = wiz.Draft.Badge.Filename
	}
	if wiz.Draft.Photo != nil {
		data["PhotoPreview"] = wiz.Draft.Photo.PreviewDataURI()
		data["PhotoName"] = wiz.Draft.Photo.Filename
	}
	renderTemplate(w, r, "registration.html", data)
}

func handleRegistrationPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	wiz, err := wizardForRequest(w, r)
	if err != nil {
		internalError(w, err)
		return
	}
	bindDraft(r, &wiz.Draft)

	switch r.FormValue("action") {
	case "next":
		wiz.Next()
	case "back":
		wiz.Back()
	case "clear_badge":
		wiz.Draft.SetFile(registration.SlotSchoolBadge, nil)
	case "clear_photo":
		wiz.Draft.SetFile(registration.SlotAdminPhoto, nil)
	case "submit":
		if wiz.BeginSubmit() {
			submitRegistration(w, r, wiz)
			return
		}
	default:
		http.Error(w, "Unknown action", http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/registration", http.StatusSeeOther)
}

// bindDraft copies the posted fields onto the draft. Text fields overwrite;
// file fields only overwrite when a new file was chosen, so navigating
// between steps does not lose earlier uploads.
func bindDraft(r *http.Request, d *registration.Draft) {
	form := func(name, current string) string {
		if _, ok := r.Form[name]; ok {
			return r.FormValue(name)
		}
		return current
	}

	d.SchoolName = form("school_name", d.SchoolName)
	d.CentreNumber = form("centre_number", d.CentreNumber)
	d.SchoolEmail = form("school_email", d.SchoolEmail)
	d.OfficeContact = form("office_contact", d.OfficeContact)
	d.Region = form("region", d.Region)
	d.District = form("district", d.District)

	d.AdminName = form("admin_name", d.AdminName)
	d.AdminNIN = form("admin_nin", d.AdminNIN)
	d.AdminContact = form("admin_contact", d.AdminContact)
	d.AdminEmail = form("admin_email", d.AdminEmail)
	d.AdminRole = form("admin_role", d.AdminRole)
	d.AdminEducation = form("admin_education", d.AdminEducation)
	d.Password = form("admin_password", d.Password)
	d.ConfirmPassword = form("admin_confirm_password", d.ConfirmPassword)

	if _, ok := r.Form["terms"]; ok || r.FormValue("action") == "submit" {
		d.TermsAccepted = r.FormValue("terms") == "on"
	}

	if file := readAttachment(r, registration.SlotSchoolBadge); file != nil {
		d.SetFile(registration.SlotSchoolBadge, file)
	}
	if file := readAttachment(r, registration.SlotAdminPhoto); file != nil {
		d.SetFile(registration.SlotAdminPhoto, file)
	}
}

// readAttachment reads an uploaded file part, or returns nil when the field
// was left empty.
func readAttachment(r *http.Request, field string) *registration.Attachment {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil || len(data) == 0 {
		return nil
	}
	return &registration.Attachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
}

// submitRegistration runs the submission sequence and signs the new account in.
func submitRegistration(w http.ResponseWriter, r *http.Request, wiz *registration.Wizard) {
	result, err := orchestrators.ExecuteRegisterSchool(r.Context(), orchestrators.RegisterSchoolInput{
		Draft: &wiz.Draft,
	}, orchestrators.RegisterSchoolDeps{
		Identity:     identitySvc,
		Blobs:        blobs,
		SchoolStore:  stores.SchoolStore,
		EmailSender:  emailSender,
		EmailFrom:    emailFromAddress,
		EmailReplyTo: emailReplyTo,
		Now:          timeNow,
		GenerateID:   generateID,
	})
	if err != nil {
		wiz.FailSubmit(submitFailureMessage(err))
		http.Redirect(w, r, "/registration", http.StatusSeeOther)
		return
	}

	wiz.FinishSubmit()
	clearWizard(w, r)
	setSessionAndRedirect(w, r, result.SessionToken, "/profile/"+result.SchoolID)
}

// submitFailureMessage maps a submission error to the message shown above the
// review step.
func submitFailureMessage(err error) string {
	var stageErr *orchestrators.StageError
	if !errors.As(err, &stageErr) {
		return "Registration failed. Please try again."
	}
	switch stageErr.Stage {
	case orchestrators.StageAccount:
		return "Could not create your account: " + stageErr.Err.Error()
	case orchestrators.StageSession:
		return "Your account was created but signing you in failed. Try signing in instead."
	case orchestrators.StageBadgeUpload:
		return "Uploading the school badge failed. Please try again."
	case orchestrators.StagePhotoUpload:
		return "Uploading the profile photo failed. Please try again."
	default:
		return "Saving your registration failed. Please try again."
	}
}
