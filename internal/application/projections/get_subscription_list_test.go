package projections

import (
	"context"
	"testing"

	domainMember "clubdesk/internal/domain/member"
	domainSport "clubdesk/internal/domain/sport"
	domainSubscription "clubdesk/internal/domain/subscription"
)

// TestQueryGetSubscriptionList_ResolvesNames verifies member and sport names
// are joined on read.
func TestQueryGetSubscriptionList_ResolvesNames(t *testing.T) {
	deps := GetSubscriptionListDeps{
		SubscriptionStore: &mockSubscriptionStore{subscriptions: []domainSubscription.Subscription{
			{ID: "sub1", MemberID: "m1", SportID: "s1", Status: domainSubscription.StatusActive, Price: 120},
		}},
		MemberStore: &mockMemberStore{members: []domainMember.Member{
			{ID: "m1", FirstName: "John", LastName: "Smith"},
		}},
		SportStore: &mockSportStore{sports: []domainSport.Sport{
			{ID: "s1", Name: "Tennis"},
		}},
	}

	res, err := QueryGetSubscriptionList(context.Background(), GetSubscriptionListQuery{}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Subscriptions) != 1 {
		t.Fatalf("subscriptions=%d want 1", len(res.Subscriptions))
	}
	v := res.Subscriptions[0]
	if v.MemberName != "John Smith" {
		t.Fatalf("member name=%q want John Smith", v.MemberName)
	}
	if v.SportName != "Tennis" {
		t.Fatalf("sport name=%q want Tennis", v.SportName)
	}
	if v.StatusColor != "bg-green-100 text-green-800" {
		t.Fatalf("status color=%q", v.StatusColor)
	}
}

// TestQueryGetSubscriptionList_PlaceholderNames verifies dangling foreign
// keys degrade to placeholder labels.
func TestQueryGetSubscriptionList_PlaceholderNames(t *testing.T) {
	deps := GetSubscriptionListDeps{
		SubscriptionStore: &mockSubscriptionStore{subscriptions: []domainSubscription.Subscription{
			{ID: "sub1", MemberID: "gone", SportID: "also-gone", Status: domainSubscription.StatusActive},
		}},
		MemberStore: &mockMemberStore{},
		SportStore:  &mockSportStore{},
	}

	res, err := QueryGetSubscriptionList(context.Background(), GetSubscriptionListQuery{}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := res.Subscriptions[0]
	if v.MemberName != UnknownMemberName {
		t.Fatalf("member name=%q want %q", v.MemberName, UnknownMemberName)
	}
	if v.SportName != UnknownSportName {
		t.Fatalf("sport name=%q want %q", v.SportName, UnknownSportName)
	}
}

// TestQueryGetSubscriptionList_StatsAndRevenue verifies stats cover all
// subscriptions regardless of the status filter and sum price snapshots.
func TestQueryGetSubscriptionList_StatsAndRevenue(t *testing.T) {
	deps := GetSubscriptionListDeps{
		SubscriptionStore: &mockSubscriptionStore{subscriptions: []domainSubscription.Subscription{
			{ID: "sub1", MemberID: "m1", SportID: "s1", Status: domainSubscription.StatusActive, Price: 120},
			{ID: "sub2", MemberID: "m1", SportID: "s2", Status: domainSubscription.StatusActive, Price: 100},
			{ID: "sub3", MemberID: "m2", SportID: "s1", Status: domainSubscription.StatusExpired, Price: 90},
			{ID: "sub4", MemberID: "m2", SportID: "s2", Status: domainSubscription.StatusCancelled, Price: 80},
		}},
		MemberStore: &mockMemberStore{},
		SportStore:  &mockSportStore{},
	}

	res, err := QueryGetSubscriptionList(context.Background(), GetSubscriptionListQuery{Status: domainSubscription.StatusActive}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Subscriptions) != 2 {
		t.Fatalf("filtered subscriptions=%d want 2", len(res.Subscriptions))
	}
	want := SubscriptionStats{Total: 4, Active: 2, Expired: 1, Cancelled: 1, TotalRevenue: 390}
	if res.Stats != want {
		t.Fatalf("stats=%+v want %+v", res.Stats, want)
	}
}
