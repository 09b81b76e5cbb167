package member

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 50
)

// Business rule constants
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"

	TypeBasic   = "basic"
	TypePremium = "premium"
	TypeVIP     = "vip"
)

// ValidStatuses contains all valid member statuses.
var ValidStatuses = []string{StatusActive, StatusInactive, StatusPending}

// ValidMembershipTypes contains all valid membership tiers.
var ValidMembershipTypes = []string{TypeBasic, TypePremium, TypeVIP}

// Presentation classes keyed by status; unknown values fall back to neutral.
var statusColors = map[string]string{
	StatusActive:   "bg-green-100 text-green-800",
	StatusInactive: "bg-red-100 text-red-800",
	StatusPending:  "bg-yellow-100 text-yellow-800",
}

// Presentation classes keyed by membership tier.
var membershipColors = map[string]string{
	TypeVIP:     "bg-purple-100 text-purple-800",
	TypePremium: "bg-blue-100 text-blue-800",
	TypeBasic:   "bg-gray-100 text-gray-800",
}

const neutralColor = "bg-gray-100 text-gray-800"

// Domain errors
var (
	ErrEmptyFirstName = errors.New("member first name cannot be empty")
	ErrEmptyLastName  = errors.New("member last name cannot be empty")
	ErrInvalidEmail   = errors.New("member email must be valid")
	ErrInvalidType    = errors.New("membership type must be 'basic', 'premium', or 'vip'")
	ErrInvalidStatus  = errors.New("status must be 'active', 'inactive', or 'pending'")
)

// Member is a club participant with a membership tier and status.
// Sport enrolment is not stored here: the subscription table is the
// authoritative relation and member sport lists are derived at read time.
type Member struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	JoinDate       time.Time
	MembershipType string
	Status         string
}

// Validate checks if the Member has valid data.
// PRE: Member struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (m *Member) Validate() error {
	if strings.TrimSpace(m.FirstName) == "" {
		return ErrEmptyFirstName
	}
	if strings.TrimSpace(m.LastName) == "" {
		return ErrEmptyLastName
	}
	if len(m.FirstName) > MaxNameLength || len(m.LastName) > MaxNameLength {
		return errors.New("member name cannot exceed 50 characters")
	}
	if !strings.Contains(m.Email, "@") {
		return ErrInvalidEmail
	}
	if !contains(ValidMembershipTypes, m.MembershipType) {
		return ErrInvalidType
	}
	if !contains(ValidStatuses, m.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// FullName returns the member's display name.
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// IsActive returns true if the member is currently active.
// INVARIANT: Status field is not mutated
func (m *Member) IsActive() bool {
	return m.Status == StatusActive
}

// StatusColor maps a member status to its presentation class.
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return neutralColor
}

// MembershipColor maps a membership tier to its presentation class.
func MembershipColor(tier string) string {
	if c, ok := membershipColors[tier]; ok {
		return c
	}
	return neutralColor
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
