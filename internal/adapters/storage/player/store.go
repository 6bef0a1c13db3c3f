package player

import (
	"context"

	domain "usra/internal/domain/player"
)

// Store persists Player state.
type Store interface {
	Save(ctx context.Context, value domain.Player) error
	ListBySchool(ctx context.Context, schoolID string) ([]domain.Player, error)
}
