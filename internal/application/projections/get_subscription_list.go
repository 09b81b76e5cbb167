package projections

import (
	"context"

	memberStore "clubdesk/internal/adapters/storage/member"
	subscriptionStore "clubdesk/internal/adapters/storage/subscription"
	domainSubscription "clubdesk/internal/domain/subscription"
)

// UnknownMemberName is the placeholder shown when a subscription references a
// member id that no longer resolves.
const UnknownMemberName = "Unknown Member"

// GetSubscriptionListQuery carries query parameters.
type GetSubscriptionListQuery struct {
	Status string // empty means all
}

// SubscriptionView is a subscription with related names resolved at read time.
type SubscriptionView struct {
	domainSubscription.Subscription
	MemberName  string
	SportName   string
	StatusColor string
}

// SubscriptionStats are single-pass aggregates over all subscriptions.
type SubscriptionStats struct {
	Total        int
	Active       int
	Expired      int
	Cancelled    int
	TotalRevenue float64
}

// GetSubscriptionListResult carries the query result.
type GetSubscriptionListResult struct {
	Subscriptions []SubscriptionView
	Stats         SubscriptionStats
}

// GetSubscriptionListDeps holds dependencies for GetSubscriptionList.
type GetSubscriptionListDeps struct {
	SubscriptionStore SubscriptionStore
	MemberStore       MemberStore
	SportStore        SportStore
}

// QueryGetSubscriptionList retrieves subscriptions with member and sport
// names joined on read.
// POST: Stats cover all subscriptions regardless of the status filter;
// revenue is the sum of subscription price snapshots
func QueryGetSubscriptionList(ctx context.Context, query GetSubscriptionListQuery, deps GetSubscriptionListDeps) (GetSubscriptionListResult, error) {
	subscriptions, err := deps.SubscriptionStore.List(ctx, subscriptionStore.ListFilter{})
	if err != nil {
		return GetSubscriptionListResult{}, err
	}

	members, err := deps.MemberStore.List(ctx, memberStore.ListFilter{})
	if err != nil {
		return GetSubscriptionListResult{}, err
	}
	memberNames := make(map[string]string, len(members))
	for _, m := range members {
		memberNames[m.ID] = m.FullName()
	}

	sports, err := deps.SportStore.List(ctx)
	if err != nil {
		return GetSubscriptionListResult{}, err
	}
	sportNames := make(map[string]string, len(sports))
	for _, s := range sports {
		sportNames[s.ID] = s.Name
	}

	var result GetSubscriptionListResult
	for _, sub := range subscriptions {
		result.Stats.Total++
		result.Stats.TotalRevenue += sub.Price
		switch sub.Status {
		case domainSubscription.StatusActive:
			result.Stats.Active++
		case domainSubscription.StatusExpired:
			result.Stats.Expired++
		case domainSubscription.StatusCancelled:
			result.Stats.Cancelled++
		}

		if query.Status != "" && sub.Status != query.Status {
			continue
		}

		result.Subscriptions = append(result.Subscriptions, NewSubscriptionView(sub, memberNames, sportNames))
	}

	return result, nil
}

// NewSubscriptionView resolves display names for one subscription.
// Unresolved foreign keys degrade to placeholder labels.
func NewSubscriptionView(sub domainSubscription.Subscription, memberNames, sportNames map[string]string) SubscriptionView {
	view := SubscriptionView{
		Subscription: sub,
		MemberName:   UnknownMemberName,
		SportName:    UnknownSportName,
		StatusColor:  domainSubscription.StatusColor(sub.Status),
	}
	if name, ok := memberNames[sub.MemberID]; ok {
		view.MemberName = name
	}
	if name, ok := sportNames[sub.SportID]; ok {
		view.SportName = name
	}
	return view
}
