package meals

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type fakeMealsRepo struct {
	meals       map[string]*Meal
	order       []string
	preferences map[string]*Preferences
	failAfter   int
	creates     int
}

func newFakeMealsRepo() *fakeMealsRepo {
	return &fakeMealsRepo{
		meals:       make(map[string]*Meal),
		preferences: make(map[string]*Preferences),
		failAfter:   -1,
	}
}

func (r *fakeMealsRepo) Create(ctx context.Context, meal *Meal) error {
	if r.failAfter >= 0 && r.creates >= r.failAfter {
		return errors.New("storage full")
	}
	r.creates++
	r.meals[meal.ID] = meal
	r.order = append(r.order, meal.ID)
	return nil
}

func (r *fakeMealsRepo) GetByID(ctx context.Context, mealID string) (*Meal, error) {
	meal, ok := r.meals[mealID]
	if !ok {
		return nil, ErrMealNotFound
	}
	return meal, nil
}

func (r *fakeMealsRepo) Update(ctx context.Context, meal *Meal) error {
	if _, ok := r.meals[meal.ID]; !ok {
		return ErrMealNotFound
	}
	r.meals[meal.ID] = meal
	return nil
}

func (r *fakeMealsRepo) Delete(ctx context.Context, mealID string) (bool, error) {
	if _, ok := r.meals[mealID]; !ok {
		return false, nil
	}
	delete(r.meals, mealID)
	return true, nil
}

func (r *fakeMealsRepo) List(ctx context.Context, userID string, from, to *time.Time) ([]Meal, error) {
	result := make([]Meal, 0)
	for _, id := range r.order {
		meal, ok := r.meals[id]
		if !ok || meal.UserID != userID {
			continue
		}
		if from != nil && meal.Date.Before(*from) {
			continue
		}
		if to != nil && meal.Date.After(*to) {
			continue
		}
		result = append(result, *meal)
	}
	return result, nil
}

func (r *fakeMealsRepo) GetPreferences(ctx context.Context, userID string) (*Preferences, error) {
	return r.preferences[userID], nil
}

type fakeGenerator struct {
	entries      []PlanEntry
	err          error
	days         int
	preferences  []string
	restrictions []string
}

func (g *fakeGenerator) GenerateMealPlan(ctx context.Context, days int, preferences, restrictions []string) ([]PlanEntry, error) {
	g.days = days
	g.preferences = preferences
	g.restrictions = restrictions
	return g.entries, g.err
}

func planEntries(days int) []PlanEntry {
	entries := make([]PlanEntry, 0, days)
	for i := 0; i < days; i++ {
		entries = append(entries, PlanEntry{
			Day:         i + 1,
			MainDish:    fmt.Sprintf("Main %d", i+1),
			SideDish:    "Salad",
			Soup:        "Miso",
			Ingredients: []string{"tofu", "rice"},
		})
	}
	return entries
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
}

func TestGeneratePlanSevenDays(t *testing.T) {
	repo := newFakeMealsRepo()
	gen := &fakeGenerator{entries: planEntries(7)}
	svc := NewService(repo, gen)
	svc.now = fixedNow

	saved, err := svc.GeneratePlan(context.Background(), "user-1", 7, []string{"spicy"}, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(saved) != 7 {
		t.Fatalf("expected 7 meals, got %d", len(saved))
	}
	for i, meal := range saved {
		want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		if !meal.Date.Equal(want) {
			t.Fatalf("day %d: expected date %v, got %v", i, want, meal.Date)
		}
		if meal.MainDish == "" {
			t.Fatalf("day %d: empty main dish", i)
		}
		if meal.Status != StatusNeedsShopping {
			t.Fatalf("day %d: expected needs_shopping, got %q", i, meal.Status)
		}
	}
	if len(repo.meals) != 7 {
		t.Fatalf("expected 7 meals stored, got %d", len(repo.meals))
	}
}

func TestGeneratePlanMergesStoredPreferences(t *testing.T) {
	repo := newFakeMealsRepo()
	repo.preferences["user-1"] = &Preferences{
		UserID:       "user-1",
		Preferences:  StringList{"japanese"},
		Restrictions: StringList{"no pork"},
	}
	gen := &fakeGenerator{entries: planEntries(3)}
	svc := NewService(repo, gen)
	svc.now = fixedNow

	_, err := svc.GeneratePlan(context.Background(), "user-1", 3, []string{"quick"}, []string{"no nuts"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(gen.preferences) != 2 || gen.preferences[0] != "quick" || gen.preferences[1] != "japanese" {
		t.Fatalf("expected merged preferences, got %v", gen.preferences)
	}
	if len(gen.restrictions) != 2 || gen.restrictions[0] != "no nuts" || gen.restrictions[1] != "no pork" {
		t.Fatalf("expected merged restrictions, got %v", gen.restrictions)
	}
}

func TestGeneratePlanRejectsDayCount(t *testing.T) {
	svc := NewService(newFakeMealsRepo(), &fakeGenerator{})
	svc.now = fixedNow

	for _, days := range []int{0, -1, 15} {
		if _, err := svc.GeneratePlan(context.Background(), "user-1", days, nil, nil); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("days=%d: expected ErrInvalidInput, got %v", days, err)
		}
	}
}

func TestGeneratePlanWrongDayCountFromGenerator(t *testing.T) {
	repo := newFakeMealsRepo()
	gen := &fakeGenerator{entries: planEntries(2)}
	svc := NewService(repo, gen)
	svc.now = fixedNow

	_, err := svc.GeneratePlan(context.Background(), "user-1", 3, nil, nil)
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if len(repo.meals) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(repo.meals))
	}
}

func TestGeneratePlanEmptyMainDish(t *testing.T) {
	repo := newFakeMealsRepo()
	entries := planEntries(3)
	entries[1].MainDish = "  "
	gen := &fakeGenerator{entries: entries}
	svc := NewService(repo, gen)
	svc.now = fixedNow

	_, err := svc.GeneratePlan(context.Background(), "user-1", 3, nil, nil)
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if len(repo.meals) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(repo.meals))
	}
}

func TestGeneratePlanPartialSave(t *testing.T) {
	repo := newFakeMealsRepo()
	repo.failAfter = 2
	gen := &fakeGenerator{entries: planEntries(5)}
	svc := NewService(repo, gen)
	svc.now = fixedNow

	saved, err := svc.GeneratePlan(context.Background(), "user-1", 5, nil, nil)
	var planErr *PlanError
	if !errors.As(err, &planErr) {
		t.Fatalf("expected *PlanError, got %v", err)
	}
	if len(planErr.Saved) != 2 || planErr.Saved[0] != 0 || planErr.Saved[1] != 1 {
		t.Fatalf("expected saved indices [0 1], got %v", planErr.Saved)
	}
	if len(saved) != 2 {
		t.Fatalf("expected 2 saved meals returned, got %d", len(saved))
	}
	if len(repo.meals) != 2 {
		t.Fatalf("expected 2 meals stored, got %d", len(repo.meals))
	}
}

func TestCreateMealValidation(t *testing.T) {
	svc := NewService(newFakeMealsRepo(), &fakeGenerator{})

	_, err := svc.CreateMeal(context.Background(), CreateMealInput{UserID: "user-1", MainDish: "Curry"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero date, got %v", err)
	}

	_, err = svc.CreateMeal(context.Background(), CreateMealInput{
		UserID:   "user-1",
		Date:     fixedNow(),
		MainDish: "Curry",
		Status:   "eaten",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestCreateMealDefaults(t *testing.T) {
	repo := newFakeMealsRepo()
	svc := NewService(repo, &fakeGenerator{})

	created, err := svc.CreateMeal(context.Background(), CreateMealInput{
		UserID:   "user-1",
		Date:     time.Date(2026, 9, 2, 18, 30, 0, 0, time.UTC),
		MainDish: " Curry ",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.MainDish != "Curry" {
		t.Fatalf("expected trimmed main dish, got %q", created.MainDish)
	}
	if created.Status != StatusNeedsShopping {
		t.Fatalf("expected default status, got %q", created.Status)
	}
	if !created.Date.Equal(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected date truncated to day, got %v", created.Date)
	}
}

func TestListMealsDefaultsToTodayOnward(t *testing.T) {
	repo := newFakeMealsRepo()
	yesterday := &Meal{ID: "meal-1", UserID: "user-1", Date: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), MainDish: "Old"}
	today := &Meal{ID: "meal-2", UserID: "user-1", Date: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), MainDish: "Now"}
	tomorrow := &Meal{ID: "meal-3", UserID: "user-1", Date: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), MainDish: "Next"}
	for _, meal := range []*Meal{yesterday, today, tomorrow} {
		repo.meals[meal.ID] = meal
		repo.order = append(repo.order, meal.ID)
	}
	svc := NewService(repo, &fakeGenerator{})
	svc.now = fixedNow

	result, err := svc.ListMeals(context.Background(), "user-1", nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 meals from today onward, got %d", len(result))
	}
	for _, meal := range result {
		if meal.ID == "meal-1" {
			t.Fatalf("expected yesterday's meal excluded")
		}
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeMealsRepo()
	repo.meals["meal-1"] = &Meal{ID: "meal-1", UserID: "user-1", MainDish: "Curry", Status: StatusNeedsShopping}
	svc := NewService(repo, &fakeGenerator{})

	updated, err := svc.UpdateStatus(context.Background(), "meal-1", StatusIngredientsReady)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Status != StatusIngredientsReady {
		t.Fatalf("expected ingredients_ready, got %q", updated.Status)
	}

	_, err = svc.UpdateStatus(context.Background(), "meal-1", "eaten")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), "missing", StatusIngredientsReady)
	if !errors.Is(err, ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}

func TestDeleteMealNotFound(t *testing.T) {
	svc := NewService(newFakeMealsRepo(), &fakeGenerator{})

	if err := svc.DeleteMeal(context.Background(), "missing"); !errors.Is(err, ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}
