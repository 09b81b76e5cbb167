package projections

import (
	"context"
	"sort"

	memberStore "clubdesk/internal/adapters/storage/member"
	subscriptionStore "clubdesk/internal/adapters/storage/subscription"
	domainSubscription "clubdesk/internal/domain/subscription"
)

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 5

// DashboardResult carries the output of the dashboard projection.
type DashboardResult struct {
	TotalSports         int
	TotalMembers        int
	TotalSubscriptions  int
	ActiveSubscriptions int
	RecentActivity      []SubscriptionView
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	SportStore        SportStore
	MemberStore       MemberStore
	SubscriptionStore SubscriptionStore
}

// QueryGetDashboard aggregates headline counts and recent payment activity.
// POST: RecentActivity holds at most 5 subscriptions, most recent payment first
func QueryGetDashboard(ctx context.Context, deps GetDashboardDeps) (DashboardResult, error) {
	sports, err := deps.SportStore.List(ctx)
	if err != nil {
		return DashboardResult{}, err
	}
	members, err := deps.MemberStore.List(ctx, memberStore.ListFilter{})
	if err != nil {
		return DashboardResult{}, err
	}
	subscriptions, err := deps.SubscriptionStore.List(ctx, subscriptionStore.ListFilter{})
	if err != nil {
		return DashboardResult{}, err
	}

	result := DashboardResult{
		TotalSports:        len(sports),
		TotalMembers:       len(members),
		TotalSubscriptions: len(subscriptions),
	}
	for _, sub := range subscriptions {
		if sub.Status == domainSubscription.StatusActive {
			result.ActiveSubscriptions++
		}
	}

	memberNames := make(map[string]string, len(members))
	for _, m := range members {
		memberNames[m.ID] = m.FullName()
	}
	sportNames := make(map[string]string, len(sports))
	for _, s := range sports {
		sportNames[s.ID] = s.Name
	}

	recent := make([]domainSubscription.Subscription, len(subscriptions))
	copy(recent, subscriptions)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].LastPayment.After(recent[j].LastPayment)
	})
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}
	for _, sub := range recent {
		result.RecentActivity = append(result.RecentActivity, NewSubscriptionView(sub, memberNames, sportNames))
	}

	return result, nil
}
