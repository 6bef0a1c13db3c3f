package web

import (
	"errors"
	"net/http"
	"time"

	"usra/internal/adapters/blobstore"
	"usra/internal/adapters/http/middleware"
	"usra/internal/application/orchestrators"
	"usra/internal/application/projections"
	"usra/internal/domain/player"
)

// handleProfile handles GET /profile/{schoolID} — the signed-in school's
// dashboard with its details and categorized player roster.
func handleProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}

	result, err := projections.QuerySchoolProfile(r.Context(), projections.SchoolProfileInput{
		SchoolID:  r.PathValue("schoolID"),
		AccountID: sess.AccountID,
	}, projections.SchoolProfileDeps{
		SchoolStore: stores.SchoolStore,
		PlayerStore: stores.PlayerStore,
	})
	if err != nil {
		if errors.Is(err, projections.ErrProfileNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "profile.html", map[string]any{
		"School":            result.School,
		"Roster":            result.Roster,
		"RosterUnavailable": result.RosterUnavailable,
		"BadgeURL":          blobs.PublicURL(blobstore.BucketSchoolBadges, result.School.BadgeRef),
		"PhotoURL":          blobs.PublicURL(blobstore.BucketAdminPhotos, result.School.PhotoRef),
		"TotalPlayers":      result.Roster.Boys.Total() + result.Roster.Girls.Total(),
	})
}

// handlePlayerRegistration handles GET and POST /player-registration/{schoolID}.
func handlePlayerRegistration(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}

	schoolID := r.PathValue("schoolID")

	// Only the owning account registers players for a school.
	rec, err := stores.SchoolStore.GetByID(r.Context(), schoolID)
	if err != nil || !rec.OwnedBy(sess.AccountID) {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		renderTemplate(w, r, "player_registration.html", map[string]any{
			"School":  rec,
			"Classes": player.Classes,
			"Sexes":   []string{player.SexMale, player.SexFemale},
		})
	case http.MethodPost:
		handlePlayerRegistrationPost(w, r, schoolID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func handlePlayerRegistrationPost(w http.ResponseWriter, r *http.Request, schoolID string) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	dob, err := time.Parse("2006-01-02", r.FormValue("date_of_birth"))
	if err != nil {
		renderPlayerFormError(w, r, schoolID, "Enter a valid date of birth")
		return
	}

	_, err = orchestrators.ExecuteRegisterPlayer(r.Context(), orchestrators.RegisterPlayerInput{
		SchoolID:        schoolID,
		Name:            r.FormValue("name"),
		DateOfBirth:     dob,
		Sex:             r.FormValue("sex"),
		Class:           r.FormValue("class"),
		LearnerID:       r.FormValue("learner_id"),
		GuardianContact: r.FormValue("guardian_contact"),
		Photo:           readAttachment(r, "player_photo"),
	}, orchestrators.RegisterPlayerDeps{
		SchoolStore: stores.SchoolStore,
		PlayerStore: stores.PlayerStore,
		Blobs:       blobs,
		Now:         timeNow,
		GenerateID:  generateID,
	})
	if err != nil {
		renderPlayerFormError(w, r, schoolID, err.Error())
		return
	}

	http.Redirect(w, r, "/profile/"+schoolID, http.StatusSeeOther)
}

func renderPlayerFormError(w http.ResponseWriter, r *http.Request, schoolID, msg string) {
	rec, err := stores.SchoolStore.GetByID(r.Context(), schoolID)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	renderTemplate(w, r, "player_registration.html", map[string]any{
		"School":  rec,
		"Classes": player.Classes,
		"Sexes":   []string{player.SexMale, player.SexFemale},
		"Error":   msg,
	})
}
