package sport

import (
	"context"

	domain "clubdesk/internal/domain/sport"
)

// Store persists Sport state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Sport, error)
	Save(ctx context.Context, value domain.Sport) error
	List(ctx context.Context) ([]domain.Sport, error)
	Count(ctx context.Context) (int, error)
}
