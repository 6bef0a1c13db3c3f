package projections

import (
	"context"
	"errors"
	"log/slog"

	"usra/internal/domain/player"
	"usra/internal/domain/school"
)

// SchoolProfileSchoolStore defines the school lookup for the profile projection.
type SchoolProfileSchoolStore interface {
	GetByID(ctx context.Context, id string) (school.School, error)
}

// SchoolProfilePlayerStore defines the player listing for the profile projection.
type SchoolProfilePlayerStore interface {
	ListBySchool(ctx context.Context, schoolID string) ([]player.Player, error)
}

// SchoolProfileInput identifies the profile to resolve and who is asking.
type SchoolProfileInput struct {
	SchoolID  string
	AccountID string
}

// SchoolProfileDeps holds dependencies for the profile projection.
type SchoolProfileDeps struct {
	SchoolStore SchoolProfileSchoolStore
	PlayerStore SchoolProfilePlayerStore
}

// SchoolProfileResult carries the resolved profile and its categorized roster.
type SchoolProfileResult struct {
	School school.School
	Roster player.Roster

	// RosterUnavailable is set when the player list could not be loaded.
	// The profile itself still renders.
	RosterUnavailable bool
}

// ErrProfileNotFound is returned for unknown IDs and for schools the caller
// does not own. Both cases look identical to the caller.
var ErrProfileNotFound = errors.New("school profile not found")

// QuerySchoolProfile resolves a school profile for its owning account. The
// requested ID must resolve to a school owned by the caller; anything else is
// not found, with no distinction between unknown and foreign IDs.
// PRE: AccountID belongs to the signed-in session
// POST: Returns the school and roster, or ErrProfileNotFound
func QuerySchoolProfile(ctx context.Context, input SchoolProfileInput, deps SchoolProfileDeps) (SchoolProfileResult, error) {
	rec, err := deps.SchoolStore.GetByID(ctx, input.SchoolID)
	if err != nil || !rec.OwnedBy(input.AccountID) {
		return SchoolProfileResult{}, ErrProfileNotFound
	}

	result := SchoolProfileResult{School: rec}

	players, err := deps.PlayerStore.ListBySchool(ctx, rec.ID)
	if err != nil {
		// The roster is secondary content; the profile renders without it.
		slog.Warn("profile_event", "event", "roster_unavailable", "school_id", rec.ID, "error", err)
		result.RosterUnavailable = true
		return result, nil
	}

	result.Roster = player.Categorize(players)
	return result, nil
}
