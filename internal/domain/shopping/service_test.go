package shopping

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type fakeShoppingRepo struct {
	items map[string]*Item
}

func newFakeShoppingRepo() *fakeShoppingRepo {
	return &fakeShoppingRepo{items: make(map[string]*Item)}
}

func (r *fakeShoppingRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeShoppingRepo) Create(ctx context.Context, item *Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeShoppingRepo) GetByID(ctx context.Context, itemID string) (*Item, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (r *fakeShoppingRepo) Update(ctx context.Context, item *Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return ErrItemNotFound
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeShoppingRepo) Delete(ctx context.Context, itemID string) (bool, error) {
	if _, ok := r.items[itemID]; !ok {
		return false, nil
	}
	delete(r.items, itemID)
	return true, nil
}

func (r *fakeShoppingRepo) List(ctx context.Context, filter ListFilter) ([]Item, error) {
	result := make([]Item, 0)
	for _, item := range r.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Purchased != nil && item.Purchased != *filter.Purchased {
			continue
		}
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func TestAddItemDefaultsCategory(t *testing.T) {
	repo := newFakeShoppingRepo()
	svc := NewService(repo)

	created, err := svc.AddItem(context.Background(), AddItemInput{Name: " Milk "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Name != "Milk" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Category != CategoryOther {
		t.Fatalf("expected other category, got %q", created.Category)
	}
	if created.Purchased {
		t.Fatalf("expected new item unpurchased")
	}
}

func TestAddItemRejectsUnknownCategory(t *testing.T) {
	svc := NewService(newFakeShoppingRepo())

	_, err := svc.AddItem(context.Background(), AddItemInput{Name: "Milk", Category: "frozen"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTogglePurchasedTwiceRestoresState(t *testing.T) {
	repo := newFakeShoppingRepo()
	repo.items["item-1"] = &Item{ID: "item-1", Name: "Milk", Category: CategoryDairy}
	svc := NewService(repo)

	first, err := svc.TogglePurchased(context.Background(), "item-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !first.Purchased {
		t.Fatalf("expected purchased after first toggle")
	}

	second, err := svc.TogglePurchased(context.Background(), "item-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if second.Purchased {
		t.Fatalf("expected unpurchased after second toggle")
	}
}

func TestTogglePurchasedNotFound(t *testing.T) {
	svc := NewService(newFakeShoppingRepo())

	_, err := svc.TogglePurchased(context.Background(), "missing")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestUpdateItemPartial(t *testing.T) {
	repo := newFakeShoppingRepo()
	quantity := "1L"
	repo.items["item-1"] = &Item{ID: "item-1", Name: "Milk", Quantity: &quantity, Category: CategoryDairy}
	svc := NewService(repo)

	category := CategoryBeverage
	updated, err := svc.UpdateItem(context.Background(), UpdateItemInput{ID: "item-1", Category: &category})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Category != CategoryBeverage {
		t.Fatalf("expected category updated, got %q", updated.Category)
	}
	if updated.Name != "Milk" || updated.Quantity == nil || *updated.Quantity != "1L" {
		t.Fatalf("expected other fields untouched, got %+v", updated)
	}
}

func TestUpdateItemNoFields(t *testing.T) {
	svc := NewService(newFakeShoppingRepo())

	_, err := svc.UpdateItem(context.Background(), UpdateItemInput{ID: "item-1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListItemsFilters(t *testing.T) {
	repo := newFakeShoppingRepo()
	repo.items["item-1"] = &Item{ID: "item-1", Name: "Milk", Category: CategoryDairy, Purchased: true}
	repo.items["item-2"] = &Item{ID: "item-2", Name: "Beef", Category: CategoryMeatFish}
	repo.items["item-3"] = &Item{ID: "item-3", Name: "Yogurt", Category: CategoryDairy}
	svc := NewService(repo)

	purchased := false
	result, err := svc.ListItems(context.Background(), ListFilter{Category: CategoryDairy, Purchased: &purchased})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 1 || result[0].ID != "item-3" {
		t.Fatalf("expected only item-3, got %+v", result)
	}
}

func TestListItemsRejectsUnknownCategory(t *testing.T) {
	svc := NewService(newFakeShoppingRepo())

	_, err := svc.ListItems(context.Background(), ListFilter{Category: "frozen"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteItemNotFound(t *testing.T) {
	svc := NewService(newFakeShoppingRepo())

	if err := svc.DeleteItem(context.Background(), "missing"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
