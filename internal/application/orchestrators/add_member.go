package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"clubdesk/internal/application/form"
	"clubdesk/internal/domain/member"
	"clubdesk/internal/domain/sport"
	"clubdesk/internal/domain/subscription"

	"github.com/google/uuid"
)

// MemberStore defines the store interface needed by the member commands.
type MemberStore interface {
	Save(ctx context.Context, m member.Member) error
	GetByID(ctx context.Context, id string) (member.Member, error)
}

// SubscriptionStore defines the store interface needed by commands that
// create subscriptions.
type SubscriptionStore interface {
	Save(ctx context.Context, s subscription.Subscription) error
	ListByMemberID(ctx context.Context, memberID string) ([]subscription.Subscription, error)
}

// SportReader resolves sports when creating subscription snapshots.
type SportReader interface {
	GetByID(ctx context.Context, id string) (sport.Sport, error)
}

// AddMemberInput carries the raw add-member form draft.
type AddMemberInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	MembershipType string
	SportIDs       []string // optional; each becomes a subscription
}

// AddMemberDeps holds dependencies for AddMember.
type AddMemberDeps struct {
	MemberStore       MemberStore
	SportStore        SportReader
	SubscriptionStore SubscriptionStore
}

// AddMemberResult carries the committed member and any subscriptions created
// from the sport selection.
type AddMemberResult struct {
	Member        member.Member
	Subscriptions []subscription.Subscription
	SportNames    []string // parallel to Subscriptions
}

// ExecuteAddMember validates the draft and commits a new Member.
// The sport selection is committed as subscriptions, since the subscription
// table is the single authoritative member-sport relation.
// PRE: none; input is an unvalidated draft
// POST: On field errors nothing is stored, including when a selected sport
// id does not resolve; on success the member is saved with status active and
// today's join date, plus one subscription per distinct selected sport with
// the default payment method
func ExecuteAddMember(ctx context.Context, input AddMemberInput, deps AddMemberDeps) (AddMemberResult, map[string]string, error) {
	values := form.Values{
		"firstName": input.FirstName,
		"lastName":  input.LastName,
		"email":     input.Email,
		"phone":     input.Phone,
	}
	if errs := form.Form(values, form.MemberRules()); len(errs) > 0 {
		return AddMemberResult{}, errs, nil
	}

	membershipType := input.MembershipType
	if membershipType == "" {
		membershipType = member.TypeBasic
	}

	today := dateOnly(timeNow())
	entity := member.Member{
		ID:             uuid.New().String(),
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		JoinDate:       today,
		MembershipType: membershipType,
		Status:         member.StatusActive,
	}
	if err := entity.Validate(); err != nil {
		return AddMemberResult{}, nil, err
	}

	// Resolve the whole selection before touching the stores, so a bad
	// sport id cannot leave the member committed without its subscriptions.
	result := AddMemberResult{Member: entity}
	selected := make(map[string]bool, len(input.SportIDs))
	for _, sportID := range input.SportIDs {
		if selected[sportID] {
			continue
		}
		sp, err := deps.SportStore.GetByID(ctx, sportID)
		if err != nil {
			return AddMemberResult{}, map[string]string{"sports": "Please choose existing sports"}, nil
		}
		sub, err := newSubscription(entity.ID, sp, subscription.PaymentCreditCard, today)
		if err != nil {
			return AddMemberResult{}, nil, err
		}
		result.Subscriptions = append(result.Subscriptions, sub)
		result.SportNames = append(result.SportNames, sp.Name)
		selected[sportID] = true
	}

	if err := deps.MemberStore.Save(ctx, entity); err != nil {
		return AddMemberResult{}, nil, err
	}
	for _, sub := range result.Subscriptions {
		if err := deps.SubscriptionStore.Save(ctx, sub); err != nil {
			return AddMemberResult{}, nil, err
		}
	}

	slog.Info("member_added", "id", entity.ID, "name", entity.FullName(), "subscriptions", len(result.Subscriptions))
	return result, nil, nil
}
