package projections

import (
	"context"

	domainSport "clubdesk/internal/domain/sport"
)

// SportView is a sport enriched with its derived availability classification.
type SportView struct {
	domainSport.Sport
	AvailabilityPercent float64
	AvailabilityLabel   string
	AvailabilityColor   string
	SpotsLeft           int
}

// GetSportListResult carries the query result.
type GetSportListResult struct {
	Sports []SportView
}

// GetSportListDeps holds dependencies for GetSportList.
type GetSportListDeps struct {
	SportStore SportStore
}

// QueryGetSportList retrieves all sports with availability classification.
// POST: Returns sports in display order; classification is recomputed from
// current store state on every call
func QueryGetSportList(ctx context.Context, deps GetSportListDeps) (GetSportListResult, error) {
	sports, err := deps.SportStore.List(ctx)
	if err != nil {
		return GetSportListResult{}, err
	}

	views := make([]SportView, 0, len(sports))
	for _, s := range sports {
		views = append(views, NewSportView(s))
	}
	return GetSportListResult{Sports: views}, nil
}

// NewSportView derives the availability classification for one sport.
func NewSportView(s domainSport.Sport) SportView {
	return SportView{
		Sport:               s,
		AvailabilityPercent: s.AvailabilityPercent(),
		AvailabilityLabel:   s.AvailabilityLabel(),
		AvailabilityColor:   s.AvailabilityColor(),
		SpotsLeft:           s.SpotsLeft(),
	}
}
