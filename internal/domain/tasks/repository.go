package tasks

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, taskID string) (*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, taskID string) (bool, error)
	// List returns tasks ordered by due time ascending with undated tasks
	// last.
	List(ctx context.Context, filter ListFilter) ([]Task, error)
}
