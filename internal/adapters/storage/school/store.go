package school

import (
	"context"

	domain "usra/internal/domain/school"
)

// Store persists School state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.School, error)
	GetByAccountID(ctx context.Context, accountID string) (domain.School, error)
	Save(ctx context.Context, value domain.School) error
	Count(ctx context.Context) (int, error)
}
