package projections

import (
	"context"

	memberStore "clubdesk/internal/adapters/storage/member"
	subscriptionStore "clubdesk/internal/adapters/storage/subscription"
	domainMember "clubdesk/internal/domain/member"
)

// UnknownSportName is the placeholder shown when a subscription references a
// sport id that no longer resolves.
const UnknownSportName = "Unknown Sport"

// GetMemberListQuery carries query parameters.
type GetMemberListQuery struct {
	Status string // empty means all
}

// MemberView is a member enriched with derived presentation state.
type MemberView struct {
	domainMember.Member
	FullName        string
	SportNames      []string
	StatusColor     string
	MembershipColor string
}

// MemberStats are single-pass aggregate counts over all members.
type MemberStats struct {
	Total    int
	Active   int
	Inactive int
	Pending  int
}

// GetMemberListResult carries the query result.
type GetMemberListResult struct {
	Members []MemberView
	Stats   MemberStats
}

// GetMemberListDeps holds dependencies for GetMemberList.
type GetMemberListDeps struct {
	MemberStore       MemberStore
	SportStore        SportStore
	SubscriptionStore SubscriptionStore
}

// QueryGetMemberList retrieves members with derived sport names and stats.
// POST: Stats count all members regardless of the status filter; each
// member's sport names come from their subscriptions, with unresolved sport
// ids degrading to a placeholder rather than failing the render
func QueryGetMemberList(ctx context.Context, query GetMemberListQuery, deps GetMemberListDeps) (GetMemberListResult, error) {
	members, err := deps.MemberStore.List(ctx, memberStore.ListFilter{})
	if err != nil {
		return GetMemberListResult{}, err
	}

	sports, err := deps.SportStore.List(ctx)
	if err != nil {
		return GetMemberListResult{}, err
	}
	sportNames := make(map[string]string, len(sports))
	for _, s := range sports {
		sportNames[s.ID] = s.Name
	}

	subscriptions, err := deps.SubscriptionStore.List(ctx, subscriptionStore.ListFilter{})
	if err != nil {
		return GetMemberListResult{}, err
	}
	sportIDsByMember := make(map[string][]string)
	for _, sub := range subscriptions {
		sportIDsByMember[sub.MemberID] = append(sportIDsByMember[sub.MemberID], sub.SportID)
	}

	var result GetMemberListResult
	for _, m := range members {
		result.Stats.Total++
		switch m.Status {
		case domainMember.StatusActive:
			result.Stats.Active++
		case domainMember.StatusInactive:
			result.Stats.Inactive++
		case domainMember.StatusPending:
			result.Stats.Pending++
		}

		if query.Status != "" && m.Status != query.Status {
			continue
		}

		names := make([]string, 0, len(sportIDsByMember[m.ID]))
		for _, sportID := range sportIDsByMember[m.ID] {
			if name, ok := sportNames[sportID]; ok {
				names = append(names, name)
			} else {
				names = append(names, UnknownSportName)
			}
		}

		result.Members = append(result.Members, MemberView{
			Member:          m,
			FullName:        m.FullName(),
			SportNames:      names,
			StatusColor:     domainMember.StatusColor(m.Status),
			MembershipColor: domainMember.MembershipColor(m.MembershipType),
		})
	}

	return result, nil
}
