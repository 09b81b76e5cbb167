package orchestrators

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"clubdesk/internal/application/form"
	"clubdesk/internal/domain/sport"

	"github.com/google/uuid"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// SportStore defines the store interface needed by the sport commands.
type SportStore interface {
	Save(ctx context.Context, s sport.Sport) error
	List(ctx context.Context) ([]sport.Sport, error)
}

// AddSportInput carries the raw add-sport form draft.
type AddSportInput struct {
	Name        string
	Description string
	Instructor  string
	Schedule    string
	Price       string
	Capacity    string
}

// AddSportDeps holds dependencies for AddSport.
type AddSportDeps struct {
	SportStore SportStore
}

// ExecuteAddSport validates the draft and commits a new Sport.
// PRE: none; input is an unvalidated draft
// POST: On field errors the store is untouched and the failed fields are
// returned; on success the sport is saved with a fresh id and zero members
func ExecuteAddSport(ctx context.Context, input AddSportInput, deps AddSportDeps) (sport.Sport, map[string]string, error) {
	values := form.Values{
		"name":        input.Name,
		"description": input.Description,
		"instructor":  input.Instructor,
		"schedule":    input.Schedule,
		"price":       input.Price,
		"capacity":    input.Capacity,
	}
	if errs := form.Form(values, form.SportRules()); len(errs) > 0 {
		return sport.Sport{}, errs, nil
	}

	// Parse failures are unreachable past validation; keep the checks anyway.
	price, err := strconv.ParseFloat(strings.TrimSpace(input.Price), 64)
	if err != nil {
		return sport.Sport{}, map[string]string{"price": "Please enter a valid price greater than 0"}, nil
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(input.Capacity))
	if err != nil {
		return sport.Sport{}, map[string]string{"capacity": "Please enter a valid capacity greater than 0"}, nil
	}

	entity := sport.Sport{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(input.Name),
		Description:    strings.TrimSpace(input.Description),
		Instructor:     strings.TrimSpace(input.Instructor),
		Schedule:       strings.TrimSpace(input.Schedule),
		Capacity:       capacity,
		CurrentMembers: 0,
		Price:          price,
	}
	if err := entity.Validate(); err != nil {
		return sport.Sport{}, nil, err
	}

	if err := deps.SportStore.Save(ctx, entity); err != nil {
		return sport.Sport{}, nil, err
	}

	slog.Info("sport_added", "id", entity.ID, "name", entity.Name)
	return entity, nil, nil
}
