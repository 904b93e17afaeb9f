package shopping

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, itemID string) (*Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, itemID string) (bool, error)
	// List returns items newest first.
	List(ctx context.Context, filter ListFilter) ([]Item, error)
}
