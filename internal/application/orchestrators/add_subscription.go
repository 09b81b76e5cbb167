package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"clubdesk/internal/application/form"
	"clubdesk/internal/domain/sport"
	"clubdesk/internal/domain/subscription"

	"github.com/google/uuid"
)

// AddSubscriptionInput carries the raw add-subscription form draft: one
// member plus a set of sport ids.
type AddSubscriptionInput struct {
	MemberID      string
	SportIDs      []string
	PaymentMethod string
}

// AddSubscriptionDeps holds dependencies for AddSubscription.
type AddSubscriptionDeps struct {
	MemberStore       MemberStore
	SportStore        SportReader
	SubscriptionStore SubscriptionStore
}

// ExecuteAddSubscription validates the draft and commits one Subscription
// per selected sport, each with its own price snapshot.
// PRE: none; input is an unvalidated draft
// POST: On field errors nothing is stored, including when any selected sport
// id does not resolve; on success each subscription runs from today to one
// year out, status active, last payment today. Sports the member already
// holds a subscription for are skipped, mirroring the form's selectable-list
// exclusion
func ExecuteAddSubscription(ctx context.Context, input AddSubscriptionInput, deps AddSubscriptionDeps) ([]subscription.Subscription, map[string]string, error) {
	values := form.Values{
		"memberId": input.MemberID,
		"sportIds": input.SportIDs,
	}
	if errs := form.Form(values, form.SubscriptionRules()); len(errs) > 0 {
		return nil, errs, nil
	}

	if _, err := deps.MemberStore.GetByID(ctx, input.MemberID); err != nil {
		return nil, map[string]string{"memberId": "Please choose an existing member"}, nil
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = subscription.PaymentCreditCard
	}

	existing, err := deps.SubscriptionStore.ListByMemberID(ctx, input.MemberID)
	if err != nil {
		return nil, nil, err
	}
	subscribed := make(map[string]bool, len(existing))
	for _, sub := range existing {
		subscribed[sub.SportID] = true
	}

	// Resolve the whole selection before saving anything; a bad sport id
	// must not commit a partial batch.
	today := dateOnly(timeNow())
	var created []subscription.Subscription
	for _, sportID := range input.SportIDs {
		if subscribed[sportID] {
			continue
		}
		sp, err := deps.SportStore.GetByID(ctx, sportID)
		if err != nil {
			return nil, map[string]string{"sportIds": "Please choose existing sports"}, nil
		}
		sub, err := newSubscription(input.MemberID, sp, paymentMethod, today)
		if err != nil {
			return nil, nil, err
		}
		created = append(created, sub)
		subscribed[sportID] = true
	}
	for _, sub := range created {
		if err := deps.SubscriptionStore.Save(ctx, sub); err != nil {
			return nil, nil, err
		}
	}

	slog.Info("subscriptions_added", "member_id", input.MemberID, "count", len(created))
	return created, nil, nil
}

// newSubscription builds a subscription snapshot for one member-sport pair.
// POST: Price is the sport's current price; the term is exactly one year
func newSubscription(memberID string, sp sport.Sport, paymentMethod string, today time.Time) (subscription.Subscription, error) {
	sub := subscription.Subscription{
		ID:            uuid.New().String(),
		MemberID:      memberID,
		SportID:       sp.ID,
		StartDate:     today,
		EndDate:       today.AddDate(1, 0, 0),
		Status:        subscription.StatusActive,
		Price:         sp.Price,
		PaymentMethod: paymentMethod,
		LastPayment:   today,
	}
	if err := sub.Validate(); err != nil {
		return subscription.Subscription{}, err
	}
	return sub, nil
}

// dateOnly truncates a time to its calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
