package orchestrators

import (
	"context"
	"testing"
	"time"

	"clubdesk/internal/domain/member"
	"clubdesk/internal/domain/sport"
	"clubdesk/internal/domain/subscription"
)

func addSubscriptionFixture() AddSubscriptionDeps {
	return AddSubscriptionDeps{
		MemberStore: &mockMemberStore{members: []member.Member{
			{ID: "m1", FirstName: "John", LastName: "Smith"},
		}},
		SportStore: &mockSportStore{sports: []sport.Sport{
			{ID: "s1", Name: "Tennis", Capacity: 20, Price: 120},
			{ID: "s2", Name: "Swimming", Capacity: 30, Price: 100},
		}},
		SubscriptionStore: &mockSubscriptionStore{},
	}
}

// TestExecuteAddSubscription_TwoSports verifies one record per selected
// sport, each with its own price snapshot and a one year term.
func TestExecuteAddSubscription_TwoSports(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	fixedNow(t, now)
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	deps := addSubscriptionFixture()
	input := AddSubscriptionInput{MemberID: "m1", SportIDs: []string{"s1", "s2"}}

	created, fieldErrs, err := ExecuteAddSubscription(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fieldErrs) != 0 {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}
	if len(created) != 2 {
		t.Fatalf("created=%d want 2", len(created))
	}

	wantPrices := []float64{120, 100}
	for i, sub := range created {
		if sub.MemberID != "m1" {
			t.Fatalf("sub[%d] member=%q want m1", i, sub.MemberID)
		}
		if sub.Price != wantPrices[i] {
			t.Fatalf("sub[%d] price=%v want %v", i, sub.Price, wantPrices[i])
		}
		if sub.Status != subscription.StatusActive {
			t.Fatalf("sub[%d] status=%q want active", i, sub.Status)
		}
		if !sub.StartDate.Equal(today) {
			t.Fatalf("sub[%d] start=%v want %v", i, sub.StartDate, today)
		}
		if !sub.EndDate.Equal(today.AddDate(1, 0, 0)) {
			t.Fatalf("sub[%d] end=%v want one year out", i, sub.EndDate)
		}
		if !sub.LastPayment.Equal(today) {
			t.Fatalf("sub[%d] last payment=%v want %v", i, sub.LastPayment, today)
		}
		if sub.PaymentMethod != subscription.PaymentCreditCard {
			t.Fatalf("sub[%d] payment=%q want default Credit Card", i, sub.PaymentMethod)
		}
	}
}

// TestExecuteAddSubscription_SkipsAlreadySubscribed verifies sports the
// member already holds are skipped rather than duplicated.
func TestExecuteAddSubscription_SkipsAlreadySubscribed(t *testing.T) {
	deps := addSubscriptionFixture()
	subs := deps.SubscriptionStore.(*mockSubscriptionStore)
	subs.subscriptions = []subscription.Subscription{
		{ID: "existing", MemberID: "m1", SportID: "s1"},
	}

	input := AddSubscriptionInput{MemberID: "m1", SportIDs: []string{"s1", "s2"}}
	created, fieldErrs, err := ExecuteAddSubscription(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fieldErrs) != 0 {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}
	if len(created) != 1 || created[0].SportID != "s2" {
		t.Fatalf("created=%v want single s2 subscription", created)
	}
}

// TestExecuteAddSubscription_UnknownMember verifies a nonexistent member is
// reported as a field error, not an internal failure.
func TestExecuteAddSubscription_UnknownMember(t *testing.T) {
	deps := addSubscriptionFixture()
	input := AddSubscriptionInput{MemberID: "ghost", SportIDs: []string{"s1"}}

	created, fieldErrs, err := ExecuteAddSubscription(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fieldErrs["memberId"] != "Please choose an existing member" {
		t.Fatalf("memberId=%q want unknown-member message", fieldErrs["memberId"])
	}
	if len(created) != 0 {
		t.Fatalf("created=%d want 0", len(created))
	}
}

// TestExecuteAddSubscription_UnknownSportStoresNothing verifies a bad sport
// id anywhere in the selection is reported as a field error and aborts the
// whole batch before any save.
func TestExecuteAddSubscription_UnknownSportStoresNothing(t *testing.T) {
	deps := addSubscriptionFixture()
	subs := deps.SubscriptionStore.(*mockSubscriptionStore)
	input := AddSubscriptionInput{MemberID: "m1", SportIDs: []string{"s1", "ghost"}}

	created, fieldErrs, err := ExecuteAddSubscription(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fieldErrs["sportIds"] != "Please choose existing sports" {
		t.Fatalf("sportIds=%q want unknown-sport message", fieldErrs["sportIds"])
	}
	if len(created) != 0 {
		t.Fatalf("created=%d want 0", len(created))
	}
	if len(subs.saved) != 0 {
		t.Fatalf("store touched on bad selection: %d saves", len(subs.saved))
	}
}

// TestExecuteAddSubscription_EmptySelection verifies the selection rules.
func TestExecuteAddSubscription_EmptySelection(t *testing.T) {
	deps := addSubscriptionFixture()
	input := AddSubscriptionInput{MemberID: "", SportIDs: nil}

	_, fieldErrs, err := ExecuteAddSubscription(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fieldErrs["memberId"] != "This field is required" {
		t.Fatalf("memberId=%q want required message", fieldErrs["memberId"])
	}
	if fieldErrs["sportIds"] != "This field is required" {
		t.Fatalf("sportIds=%q want required message", fieldErrs["sportIds"])
	}
}

// TestExecuteAddSubscription_CustomPaymentMethod verifies the chosen payment
// method carries through.
func TestExecuteAddSubscription_CustomPaymentMethod(t *testing.T) {
	deps := addSubscriptionFixture()
	input := AddSubscriptionInput{
		MemberID:      "m1",
		SportIDs:      []string{"s1"},
		PaymentMethod: subscription.PaymentPayPal,
	}

	created, _, err := ExecuteAddSubscription(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 || created[0].PaymentMethod != subscription.PaymentPayPal {
		t.Fatalf("created=%v want PayPal subscription", created)
	}
}
