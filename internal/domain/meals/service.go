package meals

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxPlanDays = 14

type Service struct {
	repo      Repository
	generator Generator
	now       func() time.Time
}

func NewService(repo Repository, generator Generator) *Service {
	return &Service{
		repo:      repo,
		generator: generator,
		now:       time.Now,
	}
}

// GeneratePlan asks the generator for one menu per day and persists each
// day independently. Day i is dated today+i. A store failure mid-batch
// returns a *PlanError carrying the indices already saved; per-day records
// are atomic but the batch is not.
func (s *Service) GeneratePlan(ctx context.Context, userID string, days int, preferences, restrictions []string) ([]Meal, error) {
	if days < 1 || days > maxPlanDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, maxPlanDays)
	}

	stored, err := s.repo.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		preferences = append(append([]string{}, preferences...), stored.Preferences...)
		restrictions = append(append([]string{}, restrictions...), stored.Restrictions...)
	}

	entries, err := s.generator.GenerateMealPlan(ctx, days, preferences, restrictions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(entries) != days {
		return nil, fmt.Errorf("%w: got %d days, want %d", ErrGenerationFailed, len(entries), days)
	}
	for i, entry := range entries {
		if strings.TrimSpace(entry.MainDish) == "" {
			return nil, fmt.Errorf("%w: day %d has no main dish", ErrGenerationFailed, i+1)
		}
	}

	today := dateOnly(s.now())
	saved := make([]Meal, 0, days)
	savedIdx := make([]int, 0, days)

	for i, entry := range entries {
		meal := Meal{
			ID:          uuid.NewString(),
			UserID:      userID,
			Date:        today.AddDate(0, 0, i),
			MainDish:    strings.TrimSpace(entry.MainDish),
			SideDish:    optional(entry.SideDish),
			Soup:        optional(entry.Soup),
			Ingredients: append(StringList{}, entry.Ingredients...),
			Status:      StatusNeedsShopping,
		}
		if err := s.repo.Create(ctx, &meal); err != nil {
			return saved, &PlanError{Saved: savedIdx, Err: err}
		}
		saved = append(saved, meal)
		savedIdx = append(savedIdx, i)
	}

	return saved, nil
}

func (s *Service) CreateMeal(ctx context.Context, input CreateMealInput) (*Meal, error) {
	mainDish := strings.TrimSpace(input.MainDish)
	if input.Date.IsZero() || mainDish == "" {
		return nil, fmt.Errorf("%w: date and main dish are required", ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = StatusNeedsShopping
	}
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, input.Status)
	}

	created := Meal{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		Date:        dateOnly(input.Date),
		MainDish:    mainDish,
		SideDish:    input.SideDish,
		Soup:        input.Soup,
		Ingredients: append(StringList{}, input.Ingredients...),
		Status:      status,
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// ListMeals defaults to today through open end when no bounds are given.
func (s *Service) ListMeals(ctx context.Context, userID string, from, to *time.Time) ([]Meal, error) {
	if from == nil && to == nil {
		today := dateOnly(s.now())
		from = &today
	}
	return s.repo.List(ctx, userID, from, to)
}

// UpdateStatus is the shopping-reconciliation transition between
// needs_shopping and ingredients_ready.
func (s *Service) UpdateStatus(ctx context.Context, mealID, status string) (*Meal, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	current, err := s.repo.GetByID(ctx, mealID)
	if err != nil {
		return nil, err
	}
	current.Status = status
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) DeleteMeal(ctx context.Context, mealID string) error {
	deleted, err := s.repo.Delete(ctx, mealID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMealNotFound
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
