package registration

import (
	"encoding/base64"
	"fmt"
)

// Attachment slots on the registration draft.
const (
	SlotSchoolBadge = "school_badge"
	SlotAdminPhoto  = "admin_photo"
)

// Attachment holds an image selected during the wizard, prior to upload.
// The picker filters on image/* only; no size or type cap is enforced here.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PreviewDataURI derives a data URI for inline display of the attachment.
// PRE: Data is non-empty
// POST: Returns a base64 data URI; attachment is not mutated
func (a *Attachment) PreviewDataURI() string {
	ct := a.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", ct, base64.StdEncoding.EncodeToString(a.Data))
}

// Draft is the transient registration form state. It lives for the duration
// of one wizard session and is discarded on successful submission.
type Draft struct {
	SchoolName    string
	CentreNumber  string
	SchoolEmail   string
	OfficeContact string
	Region        string
	District      string
	Badge         *Attachment

	AdminName       string
	AdminNIN        string
	AdminContact    string
	AdminEmail      string
	AdminRole       string
	AdminEducation  string
	Password        string
	ConfirmPassword string
	Photo           *Attachment

	TermsAccepted bool
}

// SetFile attaches or clears the file for a named slot. Passing nil clears
// both the stored handle and any derived preview state.
// PRE: slot is SlotSchoolBadge or SlotAdminPhoto
// POST: The slot holds the attachment (or nil); unknown slots are ignored
func (d *Draft) SetFile(slot string, file *Attachment) {
	switch slot {
	case SlotSchoolBadge:
		d.Badge = file
	case SlotAdminPhoto:
		d.Photo = file
	}
}

// File returns the attachment currently held in the named slot, or nil.
// INVARIANT: Draft fields are not mutated
func (d *Draft) File(slot string) *Attachment {
	switch slot {
	case SlotSchoolBadge:
		return d.Badge
	case SlotAdminPhoto:
		return d.Photo
	}
	return nil
}
