package orchestrators

import (
	"context"
	"errors"

	"clubdesk/internal/domain/member"
	"clubdesk/internal/domain/sport"
	"clubdesk/internal/domain/subscription"
)

var errNotFound = errors.New("not found")

type mockSportStore struct {
	sports []sport.Sport
	saved  []sport.Sport
}

// GetByID returns a seeded sport by ID.
// POST: Returns the seeded sport or an error
func (m *mockSportStore) GetByID(_ context.Context, id string) (sport.Sport, error) {
	for _, s := range m.sports {
		if s.ID == id {
			return s, nil
		}
	}
	return sport.Sport{}, errNotFound
}

// Save records the sport and makes it visible to later reads.
// POST: The sport appears in both the seeded list and the save log
func (m *mockSportStore) Save(_ context.Context, s sport.Sport) error {
	m.sports = append(m.sports, s)
	m.saved = append(m.saved, s)
	return nil
}

// List returns all seeded sports.
// POST: Returns the seeded sports in order
func (m *mockSportStore) List(_ context.Context) ([]sport.Sport, error) {
	return m.sports, nil
}

type mockMemberStore struct {
	members []member.Member
	saved   []member.Member
}

// GetByID returns a seeded member by ID.
// POST: Returns the seeded member or an error
func (m *mockMemberStore) GetByID(_ context.Context, id string) (member.Member, error) {
	for _, mem := range m.members {
		if mem.ID == id {
			return mem, nil
		}
	}
	return member.Member{}, errNotFound
}

// Save records the member and makes it visible to later reads.
// POST: The member appears in both the seeded list and the save log
func (m *mockMemberStore) Save(_ context.Context, mem member.Member) error {
	m.members = append(m.members, mem)
	m.saved = append(m.saved, mem)
	return nil
}

type mockSubscriptionStore struct {
	subscriptions []subscription.Subscription
	saved         []subscription.Subscription
}

// Save records the subscription and makes it visible to later reads.
// POST: The subscription appears in both the seeded list and the save log
func (m *mockSubscriptionStore) Save(_ context.Context, s subscription.Subscription) error {
	m.subscriptions = append(m.subscriptions, s)
	m.saved = append(m.saved, s)
	return nil
}

// ListByMemberID returns the seeded subscriptions held by one member.
// POST: Returns only subscriptions whose MemberID matches
func (m *mockSubscriptionStore) ListByMemberID(_ context.Context, memberID string) ([]subscription.Subscription, error) {
	var out []subscription.Subscription
	for _, sub := range m.subscriptions {
		if sub.MemberID == memberID {
			out = append(out, sub)
		}
	}
	return out, nil
}
