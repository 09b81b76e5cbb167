package subscription

import (
	"errors"
	"time"
)

// Business rule constants
const (
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"

	PaymentCreditCard   = "Credit Card"
	PaymentPayPal       = "PayPal"
	PaymentBankTransfer = "Bank Transfer"
)

// ValidStatuses contains all valid subscription statuses.
var ValidStatuses = []string{StatusActive, StatusExpired, StatusCancelled}

// ValidPaymentMethods contains the fixed payment option set offered by the forms.
var ValidPaymentMethods = []string{PaymentCreditCard, PaymentPayPal, PaymentBankTransfer}

// Presentation classes keyed by status; unknown values fall back to neutral.
var statusColors = map[string]string{
	StatusActive:    "bg-green-100 text-green-800",
	StatusExpired:   "bg-red-100 text-red-800",
	StatusCancelled: "bg-gray-100 text-gray-800",
}

// Domain errors
var (
	ErrEmptyMemberID        = errors.New("subscription member id cannot be empty")
	ErrEmptySportID         = errors.New("subscription sport id cannot be empty")
	ErrInvalidStatus        = errors.New("status must be 'active', 'expired', or 'cancelled'")
	ErrInvalidPaymentMethod = errors.New("payment method must be 'Credit Card', 'PayPal', or 'Bank Transfer'")
	ErrNegativePrice        = errors.New("subscription price cannot be negative")
)

// Subscription is a time-bounded enrolment linking one member to one sport.
// MemberID and SportID are foreign keys; display names are resolved at read
// time. Price is a snapshot of the sport's price at creation, kept as
// payment state.
type Subscription struct {
	ID            string
	MemberID      string
	SportID       string
	StartDate     time.Time
	EndDate       time.Time
	Status        string
	Price         float64
	PaymentMethod string
	LastPayment   time.Time
}

// Validate checks if the Subscription has valid data.
// PRE: Subscription struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (s *Subscription) Validate() error {
	if s.MemberID == "" {
		return ErrEmptyMemberID
	}
	if s.SportID == "" {
		return ErrEmptySportID
	}
	if !contains(ValidStatuses, s.Status) {
		return ErrInvalidStatus
	}
	if !contains(ValidPaymentMethods, s.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}
	if s.Price < 0 {
		return ErrNegativePrice
	}
	if s.EndDate.Before(s.StartDate) {
		return errors.New("subscription end date cannot precede start date")
	}
	return nil
}

// IsActive returns true if the subscription is currently active.
// INVARIANT: Status field is not mutated
func (s *Subscription) IsActive() bool {
	return s.Status == StatusActive
}

// StatusColor maps a subscription status to its presentation class.
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return statusColors[StatusCancelled]
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
