package projections

import (
	"context"

	memberStore "clubdesk/internal/adapters/storage/member"
	subscriptionStore "clubdesk/internal/adapters/storage/subscription"
	domainMember "clubdesk/internal/domain/member"
	domainSport "clubdesk/internal/domain/sport"
	domainSubscription "clubdesk/internal/domain/subscription"
)

// SportStore interface for sport queries.
type SportStore interface {
	GetByID(ctx context.Context, id string) (domainSport.Sport, error)
	List(ctx context.Context) ([]domainSport.Sport, error)
}

// MemberStore interface for member queries.
type MemberStore interface {
	GetByID(ctx context.Context, id string) (domainMember.Member, error)
	List(ctx context.Context, filter memberStore.ListFilter) ([]domainMember.Member, error)
}

// SubscriptionStore interface for subscription queries.
type SubscriptionStore interface {
	List(ctx context.Context, filter subscriptionStore.ListFilter) ([]domainSubscription.Subscription, error)
	ListByMemberID(ctx context.Context, memberID string) ([]domainSubscription.Subscription, error)
}
