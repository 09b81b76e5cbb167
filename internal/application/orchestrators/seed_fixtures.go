package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"clubdesk/internal/domain/member"
	"clubdesk/internal/domain/sport"
	"clubdesk/internal/domain/subscription"

	"github.com/google/uuid"
)

// SeedFixturesDeps holds dependencies for SeedFixtures.
type SeedFixturesDeps struct {
	SportStore        SportStore
	MemberStore       MemberStoreForSeed
	SubscriptionStore SubscriptionStore
}

// MemberStoreForSeed defines the member store interface needed by seeding.
type MemberStoreForSeed interface {
	Save(ctx context.Context, m member.Member) error
}

// SeedLatency is an optional fixed delay applied before seeding, reproducing
// the artificial load latency of the development dataset. Zero disables it.
var SeedLatency time.Duration

type sportFixture struct {
	name, description, instructor, schedule string
	capacity, currentMembers                int
	price                                   float64
}

type memberFixture struct {
	firstName, lastName, email, phone string
	joinDate                          string
	membershipType, status            string
}

type subscriptionFixture struct {
	memberIdx, sportIdx int // indexes into the fixture slices
	startDate           string
	status              string
	paymentMethod       string
	lastPayment         string
}

var sportFixtures = []sportFixture{
	{"Tennis", "Professional tennis coaching for all skill levels", "Coach Sarah Johnson", "Mon, Wed, Fri 6:00 PM - 8:00 PM", 20, 15, 120},
	{"Swimming", "Swimming lessons and fitness training", "Coach Mike Chen", "Tue, Thu, Sat 7:00 AM - 9:00 AM", 30, 25, 100},
	{"Basketball", "Basketball training and team practice", "Coach David Williams", "Mon, Wed, Fri 5:00 PM - 7:00 PM", 25, 18, 90},
	{"Yoga", "Relaxing yoga sessions for mind and body", "Coach Emma Davis", "Tue, Thu, Sun 6:30 PM - 7:30 PM", 15, 12, 80},
	{"Soccer", "Soccer training and competitive play", "Coach Carlos Rodriguez", "Sat, Sun 9:00 AM - 11:00 AM", 35, 28, 110},
	{"Gym", "Full access to gym equipment and personal training", "Coach Alex Thompson", "Daily 6:00 AM - 10:00 PM", 50, 42, 150},
}

var memberFixtures = []memberFixture{
	{"John", "Smith", "john.smith@email.com", "+1 (555) 123-4567", "2023-01-15", member.TypePremium, member.StatusActive},
	{"Sarah", "Johnson", "sarah.johnson@email.com", "+1 (555) 234-5678", "2023-02-20", member.TypeVIP, member.StatusActive},
	{"Michael", "Brown", "michael.brown@email.com", "+1 (555) 345-6789", "2023-03-10", member.TypeBasic, member.StatusActive},
	{"Emily", "Davis", "emily.davis@email.com", "+1 (555) 456-7890", "2023-01-05", member.TypePremium, member.StatusActive},
	{"David", "Wilson", "david.wilson@email.com", "+1 (555) 567-8901", "2023-04-12", member.TypeBasic, member.StatusInactive},
	{"Lisa", "Garcia", "lisa.garcia@email.com", "+1 (555) 678-9012", "2023-05-18", member.TypeVIP, member.StatusActive},
	{"Robert", "Martinez", "robert.martinez@email.com", "+1 (555) 789-0123", "2023-06-22", member.TypeBasic, member.StatusPending},
	{"Jennifer", "Taylor", "jennifer.taylor@email.com", "+1 (555) 890-1234", "2023-02-08", member.TypePremium, member.StatusActive},
}

var subscriptionFixtures = []subscriptionFixture{
	{0, 0, "2023-01-15", subscription.StatusActive, subscription.PaymentCreditCard, "2023-12-15"},
	{0, 2, "2023-01-15", subscription.StatusActive, subscription.PaymentCreditCard, "2023-12-15"},
	{1, 0, "2023-02-20", subscription.StatusActive, subscription.PaymentPayPal, "2023-12-20"},
	{1, 1, "2023-02-20", subscription.StatusActive, subscription.PaymentPayPal, "2023-12-20"},
	{1, 3, "2023-02-20", subscription.StatusActive, subscription.PaymentPayPal, "2023-12-20"},
	{2, 4, "2023-03-10", subscription.StatusActive, subscription.PaymentBankTransfer, "2023-12-10"},
	{3, 1, "2023-01-05", subscription.StatusActive, subscription.PaymentCreditCard, "2023-12-05"},
	{3, 3, "2023-01-05", subscription.StatusActive, subscription.PaymentCreditCard, "2023-12-05"},
	{3, 5, "2023-01-05", subscription.StatusActive, subscription.PaymentCreditCard, "2023-12-05"},
	{4, 2, "2023-04-12", subscription.StatusExpired, subscription.PaymentCreditCard, "2023-11-12"},
}

// ExecuteSeedFixtures loads the development dataset if the store is empty.
// PRE: stores are reachable
// POST: Six sports, eight members and ten subscriptions exist; running again
// is a no-op
func ExecuteSeedFixtures(ctx context.Context, deps SeedFixturesDeps) error {
	existing, err := deps.SportStore.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil // Already seeded
	}

	if SeedLatency > 0 {
		time.Sleep(SeedLatency)
	}

	// Sport and member stores prepend on save, so fixtures go in reverse to
	// keep catalogue order.
	sportIDs := make([]string, len(sportFixtures))
	for i := range sportIDs {
		sportIDs[i] = uuid.New().String()
	}
	for i := len(sportFixtures) - 1; i >= 0; i-- {
		f := sportFixtures[i]
		s := sport.Sport{
			ID:             sportIDs[i],
			Name:           f.name,
			Description:    f.description,
			Instructor:     f.instructor,
			Schedule:       f.schedule,
			Capacity:       f.capacity,
			CurrentMembers: f.currentMembers,
			Price:          f.price,
		}
		if err := deps.SportStore.Save(ctx, s); err != nil {
			return err
		}
	}

	memberIDs := make([]string, len(memberFixtures))
	for i := range memberIDs {
		memberIDs[i] = uuid.New().String()
	}
	for i := len(memberFixtures) - 1; i >= 0; i-- {
		f := memberFixtures[i]
		m := member.Member{
			ID:             memberIDs[i],
			FirstName:      f.firstName,
			LastName:       f.lastName,
			Email:          f.email,
			Phone:          f.phone,
			JoinDate:       mustDate(f.joinDate),
			MembershipType: f.membershipType,
			Status:         f.status,
		}
		if err := deps.MemberStore.Save(ctx, m); err != nil {
			return err
		}
	}

	for _, f := range subscriptionFixtures {
		start := mustDate(f.startDate)
		sub := subscription.Subscription{
			ID:            uuid.New().String(),
			MemberID:      memberIDs[f.memberIdx],
			SportID:       sportIDs[f.sportIdx],
			StartDate:     start,
			EndDate:       start.AddDate(1, 0, 0),
			Status:        f.status,
			Price:         sportFixtures[f.sportIdx].price,
			PaymentMethod: f.paymentMethod,
			LastPayment:   mustDate(f.lastPayment),
		}
		if err := deps.SubscriptionStore.Save(ctx, sub); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "fixtures_seeded",
		"sports", len(sportFixtures), "members", len(memberFixtures), "subscriptions", len(subscriptionFixtures))
	return nil
}

// mustDate parses a fixture date; fixtures are compile-time constants.
func mustDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}
