package meals

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, meal *Meal) error
	GetByID(ctx context.Context, mealID string) (*Meal, error)
	Update(ctx context.Context, meal *Meal) error
	Delete(ctx context.Context, mealID string) (bool, error)
	// List returns the user's meals within the optional bounds, date
	// ascending.
	List(ctx context.Context, userID string, from, to *time.Time) ([]Meal, error)
	// GetPreferences returns nil without error when the user has none
	// stored.
	GetPreferences(ctx context.Context, userID string) (*Preferences, error)
}
