package sport

import (
	"errors"
	"strings"
)

// Availability bands, from least to most severe.
const (
	AvailabilityAvailable = "Available"
	AvailabilityLimited   = "Limited Spots"
	AvailabilityFull      = "Almost Full"
)

// Availability band thresholds (percent of capacity in use).
const (
	LimitedThreshold = 75
	FullThreshold    = 90
)

// Presentation classes for the availability bands.
var availabilityColors = map[string]string{
	AvailabilityAvailable: "text-green-600",
	AvailabilityLimited:   "text-yellow-600",
	AvailabilityFull:      "text-red-600",
}

// Domain errors
var (
	ErrEmptyName       = errors.New("sport name cannot be empty")
	ErrInvalidCapacity = errors.New("sport capacity must be greater than zero")
	ErrNegativePrice   = errors.New("sport price cannot be negative")
)

// Sport is a bookable program with capacity, schedule, instructor and price.
type Sport struct {
	ID             string
	Name           string
	Description    string
	Instructor     string
	Schedule       string
	Capacity       int
	CurrentMembers int // informational only; not maintained by the subscription lifecycle
	Price          float64
}

// Validate checks if the Sport has valid data.
// PRE: Sport struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (s *Sport) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if s.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if s.Price < 0 {
		return ErrNegativePrice
	}
	if s.CurrentMembers < 0 {
		return errors.New("sport current members cannot be negative")
	}
	return nil
}

// AvailabilityPercent returns how full the sport is, in percent.
// A zero capacity reports 0 rather than dividing by zero.
func (s *Sport) AvailabilityPercent() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.CurrentMembers) / float64(s.Capacity) * 100
}

// AvailabilityLabel classifies the sport into an availability band.
// POST: Returns "Almost Full" at >=90%, "Limited Spots" at >=75%, "Available" otherwise
// INVARIANT: For fixed capacity, raising CurrentMembers never moves the
// label to a less severe band
func (s *Sport) AvailabilityLabel() string {
	pct := s.AvailabilityPercent()
	switch {
	case pct >= FullThreshold:
		return AvailabilityFull
	case pct >= LimitedThreshold:
		return AvailabilityLimited
	default:
		return AvailabilityAvailable
	}
}

// AvailabilityColor returns the presentation class for the availability band.
func (s *Sport) AvailabilityColor() string {
	return availabilityColors[s.AvailabilityLabel()]
}

// SpotsLeft returns the remaining capacity, never below zero.
func (s *Sport) SpotsLeft() int {
	left := s.Capacity - s.CurrentMembers
	if left < 0 {
		return 0
	}
	return left
}
