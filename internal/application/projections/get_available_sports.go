package projections

import (
	"context"

	domainSport "clubdesk/internal/domain/sport"
)

// GetAvailableSportsQuery carries query parameters.
type GetAvailableSportsQuery struct {
	MemberID string
}

// GetAvailableSportsResult carries the query result.
type GetAvailableSportsResult struct {
	Sports []domainSport.Sport
}

// GetAvailableSportsDeps holds dependencies for GetAvailableSports.
type GetAvailableSportsDeps struct {
	SportStore        SportStore
	SubscriptionStore SubscriptionStore
}

// QueryGetAvailableSports returns the sports a member is not yet subscribed to.
// PRE: none; an empty member id returns the full sport list
// POST: Result is the complement of the member's subscription sport ids
// within the full sport set
func QueryGetAvailableSports(ctx context.Context, query GetAvailableSportsQuery, deps GetAvailableSportsDeps) (GetAvailableSportsResult, error) {
	sports, err := deps.SportStore.List(ctx)
	if err != nil {
		return GetAvailableSportsResult{}, err
	}
	if query.MemberID == "" {
		return GetAvailableSportsResult{Sports: sports}, nil
	}

	subscriptions, err := deps.SubscriptionStore.ListByMemberID(ctx, query.MemberID)
	if err != nil {
		return GetAvailableSportsResult{}, err
	}
	subscribed := make(map[string]bool, len(subscriptions))
	for _, sub := range subscriptions {
		subscribed[sub.SportID] = true
	}

	available := make([]domainSport.Sport, 0, len(sports))
	for _, s := range sports {
		if !subscribed[s.ID] {
			available = append(available, s)
		}
	}
	return GetAvailableSportsResult{Sports: available}, nil
}
