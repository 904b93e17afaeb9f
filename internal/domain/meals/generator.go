package meals

import "context"

// PlanEntry is one generated day of a meal plan, before persistence.
type PlanEntry struct {
	Day         int
	MainDish    string
	SideDish    string
	Soup        string
	Ingredients []string
}

// Generator produces a structured multi-day meal plan. Implementations talk
// to an external model; the service translates their failures into
// ErrGenerationFailed.
type Generator interface {
	GenerateMealPlan(ctx context.Context, days int, preferences, restrictions []string) ([]PlanEntry, error)
}
