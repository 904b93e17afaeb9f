package shopping

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddItem creates an item; new items always start unpurchased.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	category := input.Category
	if category == "" {
		category = CategoryOther
	}
	if !ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, input.Category)
	}

	created := Item{
		ID:       uuid.NewString(),
		Name:     name,
		Quantity: input.Quantity,
		Category: category,
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) TogglePurchased(ctx context.Context, itemID string) (*Item, error) {
	var toggled *Item
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		current, err := tx.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		current.Purchased = !current.Purchased
		if err := tx.Update(ctx, current); err != nil {
			return err
		}
		toggled = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*Item, error) {
	if input.Name == nil && input.Quantity == nil && input.Category == nil && input.Purchased == nil {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Category != nil && !ValidCategory(*input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *input.Category)
	}

	current, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		current.Name = strings.TrimSpace(*input.Name)
	}
	if input.Quantity != nil {
		current.Quantity = input.Quantity
	}
	if input.Category != nil {
		current.Category = *input.Category
	}
	if input.Purchased != nil {
		current.Purchased = *input.Purchased
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) ListItems(ctx context.Context, filter ListFilter) ([]Item, error) {
	if filter.Category != "" && !ValidCategory(filter.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, filter.Category)
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) DeleteItem(ctx context.Context, itemID string) error {
	deleted, err := s.repo.Delete(ctx, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}
