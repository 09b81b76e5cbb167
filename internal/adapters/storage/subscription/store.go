package subscription

import (
	"context"

	domain "clubdesk/internal/domain/subscription"
)

// Store persists Subscription state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Subscription, error)
	Save(ctx context.Context, value domain.Subscription) error
	List(ctx context.Context, filter ListFilter) ([]domain.Subscription, error)
	ListByMemberID(ctx context.Context, memberID string) ([]domain.Subscription, error)
	ListBySportID(ctx context.Context, sportID string) ([]domain.Subscription, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Status string
}
