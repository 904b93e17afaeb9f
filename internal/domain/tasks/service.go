package tasks

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

func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !ValidPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, input.Priority)
	}

	created := Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: input.Description,
		AssigneeID:  input.AssigneeID,
		Priority:    priority,
		DueAt:       input.DueAt,
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) GetTask(ctx context.Context, taskID string) (*Task, error) {
	return s.repo.GetByID(ctx, taskID)
}

// UpdateTask applies only the supplied fields; everything else keeps its
// prior value.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*Task, error) {
	if input.Title == nil && input.Description == nil && input.AssigneeID == nil &&
		input.Priority == nil && input.DueAt == nil && input.Completed == nil {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if input.Priority != nil && !ValidPriority(*input.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *input.Priority)
	}

	current, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		current.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		current.Description = input.Description
	}
	if input.AssigneeID != nil {
		current.AssigneeID = input.AssigneeID
	}
	if input.Priority != nil {
		current.Priority = *input.Priority
	}
	if input.DueAt != nil {
		current.DueAt = input.DueAt
	}
	if input.Completed != nil {
		current.Completed = *input.Completed
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// ToggleCompletion flips the completed flag. Two toggles restore the
// original state; concurrent toggles resolve last-write-wins.
func (s *Service) ToggleCompletion(ctx context.Context, taskID string) (*Task, error) {
	var toggled *Task
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		current, err := tx.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		current.Completed = !current.Completed
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

func (s *Service) ListTasks(ctx context.Context, filter ListFilter) ([]Task, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) DeleteTask(ctx context.Context, taskID string) error {
	deleted, err := s.repo.Delete(ctx, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}
