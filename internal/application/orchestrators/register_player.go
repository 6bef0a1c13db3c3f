package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"usra/internal/adapters/blobstore"
	"usra/internal/domain/player"
	"usra/internal/domain/registration"
	"usra/internal/domain/school"
)

// SchoolStoreForPlayer defines the store lookup needed by RegisterPlayer.
type SchoolStoreForPlayer interface {
	GetByID(ctx context.Context, id string) (school.School, error)
}

// PlayerStoreForRegistration defines the store interface needed by RegisterPlayer.
type PlayerStoreForRegistration interface {
	Save(ctx context.Context, p player.Player) error
}

// RegisterPlayerInput carries the player registration form.
type RegisterPlayerInput struct {
	SchoolID        string
	Name            string
	DateOfBirth     time.Time
	Sex             string
	Class           string
	LearnerID       string
	GuardianContact string
	Photo           *registration.Attachment
}

// RegisterPlayerDeps holds dependencies for RegisterPlayer.
type RegisterPlayerDeps struct {
	SchoolStore SchoolStoreForPlayer
	PlayerStore PlayerStoreForRegistration
	Blobs       blobstore.Store

	Now        func() time.Time
	GenerateID func() string
}

var ErrUnknownSchool = errors.New("school not found")

// ExecuteRegisterPlayer registers one player under an existing school. The
// player's age is computed from the date of birth at registration time and
// stored alongside it.
// PRE: SchoolID refers to a registered school
// POST: Player persisted with computed age; photo uploaded when provided
func ExecuteRegisterPlayer(ctx context.Context, input RegisterPlayerInput, deps RegisterPlayerDeps) (string, error) {
	if _, err := deps.SchoolStore.GetByID(ctx, input.SchoolID); err != nil {
		return "", ErrUnknownSchool
	}
	if input.Sex != player.SexMale && input.Sex != player.SexFemale {
		return "", errors.New("sex must be Male or Female")
	}

	now := deps.Now()

	p := player.Player{
		ID:              deps.GenerateID(),
		SchoolID:        input.SchoolID,
		Name:            input.Name,
		DateOfBirth:     input.DateOfBirth,
		Sex:             input.Sex,
		Class:           input.Class,
		LearnerID:       input.LearnerID,
		GuardianContact: input.GuardianContact,
		CreatedAt:       now,
	}
	if err := p.Validate(); err != nil {
		return "", err
	}
	p.Age = p.AgeOn(now)

	if input.Photo != nil {
		key := fmt.Sprintf("%s-%d-%s", p.ID, now.Unix(), input.Photo.Filename)
		ref, err := deps.Blobs.Put(ctx, blobstore.BucketPlayerPhotos, key, input.Photo.ContentType, input.Photo.Data)
		if err != nil {
			return "", fmt.Errorf("photo upload failed: %w", err)
		}
		p.PhotoRef = ref
	}

	if err := deps.PlayerStore.Save(ctx, p); err != nil {
		return "", err
	}

	slog.Info("registration_event", "event", "player_registered", "player_id", p.ID, "school_id", p.SchoolID, "age", p.Age)
	return p.ID, nil
}
