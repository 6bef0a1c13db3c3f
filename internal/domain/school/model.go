package school

import (
	"errors"
	"strings"
	"time"
)

// Registration status constants. Records are created under review and are
// not mutated by this application afterwards.
const (
	StatusUnderReview = "under_review"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("school name cannot be empty")
	ErrEmptyContact   = errors.New("school contact cannot be empty")
	ErrEmptyRegion    = errors.New("region cannot be empty")
	ErrEmptyDistrict  = errors.New("district cannot be empty")
	ErrEmptyAccountID = errors.New("owner account id cannot be empty")
)

// School holds the durable registration record for one member school.
// Exactly one school exists per owner account; the profile resolver enforces
// this by lookup-by-owner rather than a uniqueness constraint.
type School struct {
	ID        string
	AccountID string

	Name          string
	CentreNumber  string
	Email         string
	OfficeContact string
	Region        string
	District      string
	BadgeRef      string // object storage reference, empty when no badge was attached

	AdminName      string
	AdminNIN       string
	AdminContact   string
	AdminEmail     string
	AdminRole      string
	AdminEducation string
	PhotoRef       string // object storage reference, empty when no photo was attached

	Status    string
	CreatedAt time.Time
}

// Validate checks if the School has valid data.
// PRE: School struct is populated
// POST: Returns nil if valid, error otherwise
func (s *School) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(s.OfficeContact) == "" {
		return ErrEmptyContact
	}
	if strings.TrimSpace(s.Region) == "" {
		return ErrEmptyRegion
	}
	if strings.TrimSpace(s.District) == "" {
		return ErrEmptyDistrict
	}
	if strings.TrimSpace(s.AccountID) == "" {
		return ErrEmptyAccountID
	}
	return nil
}

// OwnedBy reports whether the record belongs to the given account.
// INVARIANT: School fields are not mutated
func (s *School) OwnedBy(accountID string) bool {
	return accountID != "" && s.AccountID == accountID
}
