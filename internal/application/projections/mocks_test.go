package projections

import (
	"context"
	"errors"

	memberStore "clubdesk/internal/adapters/storage/member"
	subscriptionStore "clubdesk/internal/adapters/storage/subscription"
	domainMember "clubdesk/internal/domain/member"
	domainSport "clubdesk/internal/domain/sport"
	domainSubscription "clubdesk/internal/domain/subscription"
)

var errNotFound = errors.New("not found")

type mockSportStore struct {
	sports []domainSport.Sport
}

// GetByID returns a seeded sport by ID.
// POST: Returns the seeded sport or an error
func (m *mockSportStore) GetByID(_ context.Context, id string) (domainSport.Sport, error) {
	for _, s := range m.sports {
		if s.ID == id {
			return s, nil
		}
	}
	return domainSport.Sport{}, errNotFound
}

// List returns all seeded sports.
// POST: Returns the seeded sports in order
func (m *mockSportStore) List(_ context.Context) ([]domainSport.Sport, error) {
	return m.sports, nil
}

type mockMemberStore struct {
	members []domainMember.Member
}

// GetByID returns a seeded member by ID.
// POST: Returns the seeded member or an error
func (m *mockMemberStore) GetByID(_ context.Context, id string) (domainMember.Member, error) {
	for _, mem := range m.members {
		if mem.ID == id {
			return mem, nil
		}
	}
	return domainMember.Member{}, errNotFound
}

// List returns all seeded members; the filter is applied by the projection.
// POST: Returns the seeded members in order
func (m *mockMemberStore) List(_ context.Context, _ memberStore.ListFilter) ([]domainMember.Member, error) {
	return m.members, nil
}

type mockSubscriptionStore struct {
	subscriptions []domainSubscription.Subscription
}

// List returns all seeded subscriptions.
// POST: Returns the seeded subscriptions in order
func (m *mockSubscriptionStore) List(_ context.Context, _ subscriptionStore.ListFilter) ([]domainSubscription.Subscription, error) {
	return m.subscriptions, nil
}

// ListByMemberID returns the seeded subscriptions held by one member.
// POST: Returns only subscriptions whose MemberID matches
func (m *mockSubscriptionStore) ListByMemberID(_ context.Context, memberID string) ([]domainSubscription.Subscription, error) {
	var out []domainSubscription.Subscription
	for _, sub := range m.subscriptions {
		if sub.MemberID == memberID {
			out = append(out, sub)
		}
	}
	return out, nil
}
