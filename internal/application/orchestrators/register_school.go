package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"usra/internal/adapters/blobstore"
	"usra/internal/adapters/email"
	"usra/internal/domain/registration"
	"usra/internal/domain/school"
)

// Submission stages, used to tag errors with where the sequence stopped.
const (
	StageAccount     = "account"
	StageSession     = "session"
	StageBadgeUpload = "badge_upload"
	StagePhotoUpload = "photo_upload"
	StagePersist     = "persist"
)

// StageError wraps a failure with the submission stage it occurred in.
// Work completed in earlier stages is NOT rolled back; a retry against the
// same draft fails at StageAccount because the email is already taken.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("registration failed at %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

var ErrTermsNotAccepted = errors.New("terms and conditions must be accepted")

// IdentityForRegistration defines the identity operations needed by RegisterSchool.
type IdentityForRegistration interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	CreateSession(ctx context.Context, accountID string) (string, error)
	DeleteSession(ctx context.Context, token string) error
}

// SchoolStoreForRegistration defines the store interface needed by RegisterSchool.
type SchoolStoreForRegistration interface {
	Save(ctx context.Context, s school.School) error
}

// RegisterSchoolInput carries the completed draft for submission.
type RegisterSchoolInput struct {
	Draft *registration.Draft
}

// RegisterSchoolResult carries the outcome of a successful submission.
type RegisterSchoolResult struct {
	SchoolID     string
	AccountID    string
	SessionToken string
}

// RegisterSchoolDeps holds dependencies for RegisterSchool.
type RegisterSchoolDeps struct {
	Identity     IdentityForRegistration
	Blobs        blobstore.Store
	SchoolStore  SchoolStoreForRegistration
	EmailSender  email.Sender // optional; confirmation email is best-effort
	EmailFrom    string
	EmailReplyTo string

	Now        func() time.Time
	GenerateID func() string
}

// ExecuteRegisterSchool runs the submission sequence: create the account,
// open a session, upload the badge and photo, then persist the school record.
// Each step runs only after the previous one succeeded.
// PRE: Draft has passed step validation and terms are accepted
// POST: On success all five steps completed; on failure a *StageError names
// the failed stage and the session (if created) has been torn down best-effort
func ExecuteRegisterSchool(ctx context.Context, input RegisterSchoolInput, deps RegisterSchoolDeps) (RegisterSchoolResult, error) {
	d := input.Draft
	if d == nil {
		return RegisterSchoolResult{}, errors.New("draft cannot be nil")
	}
	if !d.TermsAccepted {
		return RegisterSchoolResult{}, ErrTermsNotAccepted
	}

	accountID, err := deps.Identity.CreateAccount(ctx, d.AdminEmail, d.Password, d.AdminName)
	if err != nil {
		slog.Info("registration_event", "event", "submit_failed", "stage", StageAccount, "error", err)
		return RegisterSchoolResult{}, &StageError{Stage: StageAccount, Err: err}
	}

	token, err := deps.Identity.CreateSession(ctx, accountID)
	if err != nil {
		slog.Info("registration_event", "event", "submit_failed", "stage", StageSession, "error", err)
		return RegisterSchoolResult{}, &StageError{Stage: StageSession, Err: err}
	}

	// From here on, failures tear the session down so the browser is not left
	// signed in to a half-registered school.
	fail := func(stage string, err error) (RegisterSchoolResult, error) {
		if derr := deps.Identity.DeleteSession(ctx, token); derr != nil {
			slog.Warn("registration_event", "event", "session_teardown_failed", "error", derr)
		}
		slog.Info("registration_event", "event", "submit_failed", "stage", stage, "error", err)
		return RegisterSchoolResult{}, &StageError{Stage: stage, Err: err}
	}

	stamp := deps.Now().Unix()
	var badgeRef, photoRef string

	if d.Badge != nil {
		key := fmt.Sprintf("%s-%d-%s", accountID, stamp, d.Badge.Filename)
		badgeRef, err = deps.Blobs.Put(ctx, blobstore.BucketSchoolBadges, key, d.Badge.ContentType, d.Badge.Data)
		if err != nil {
			return fail(StageBadgeUpload, err)
		}
	}

	if d.Photo != nil {
		key := fmt.Sprintf("%s-%d-%s", accountID, stamp, d.Photo.Filename)
		photoRef, err = deps.Blobs.Put(ctx, blobstore.BucketAdminPhotos, key, d.Photo.ContentType, d.Photo.Data)
		if err != nil {
			return fail(StagePhotoUpload, err)
		}
	}

	rec := school.School{
		ID:        deps.GenerateID(),
		AccountID: accountID,

		Name:          d.SchoolName,
		CentreNumber:  d.CentreNumber,
		Email:         d.SchoolEmail,
		OfficeContact: d.OfficeContact,
		Region:        d.Region,
		District:      d.District,
		BadgeRef:      badgeRef,

		AdminName:      d.AdminName,
		AdminNIN:       d.AdminNIN,
		AdminContact:   d.AdminContact,
		AdminEmail:     d.AdminEmail,
		AdminRole:      d.AdminRole,
		AdminEducation: d.AdminEducation,
		PhotoRef:       photoRef,

		Status:    school.StatusUnderReview,
		CreatedAt: deps.Now(),
	}
	if err := rec.Validate(); err != nil {
		return fail(StagePersist, err)
	}
	if err := deps.SchoolStore.Save(ctx, rec); err != nil {
		return fail(StagePersist, err)
	}

	slog.Info("registration_event", "event", "school_registered", "school_id", rec.ID, "region", rec.Region)

	sendConfirmationEmail(ctx, deps, rec)

	return RegisterSchoolResult{
		SchoolID:     rec.ID,
		AccountID:    accountID,
		SessionToken: token,
	}, nil
}

// sendConfirmationEmail sends the registration confirmation. Failures are
// logged and never fail the submission.
func sendConfirmationEmail(ctx context.Context, deps RegisterSchoolDeps, rec school.School) {
	if deps.EmailSender == nil || rec.AdminEmail == "" {
		return
	}
	html := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your registration for <strong>%s</strong> has been received and is under review by the association.</p><p>You can sign in at any time to view your school profile and register players.</p>",
		rec.AdminName, rec.Name,
	)
	_, err := deps.EmailSender.Send(ctx, email.SendRequest{
		To:      []string{rec.AdminEmail},
		From:    deps.EmailFrom,
		Subject: "USRA registration received: " + rec.Name,
		HTML:    html,
		ReplyTo: deps.EmailReplyTo,
	})
	if err != nil {
		slog.Warn("registration_event", "event", "confirmation_email_failed", "school_id", rec.ID, "error", err)
	}
}
