package tasks

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type fakeTasksRepo struct {
	tasks map[string]*Task
}

func newFakeTasksRepo() *fakeTasksRepo {
	return &fakeTasksRepo{tasks: make(map[string]*Task)}
}

func (r *fakeTasksRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeTasksRepo) Create(ctx context.Context, task *Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTasksRepo) GetByID(ctx context.Context, taskID string) (*Task, error) {
	task, ok := r.tasks[taskID]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (r *fakeTasksRepo) Update(ctx context.Context, task *Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return ErrTaskNotFound
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTasksRepo) Delete(ctx context.Context, taskID string) (bool, error) {
	if _, ok := r.tasks[taskID]; !ok {
		return false, nil
	}
	delete(r.tasks, taskID)
	return true, nil
}

func (r *fakeTasksRepo) List(ctx context.Context, filter ListFilter) ([]Task, error) {
	result := make([]Task, 0)
	for _, task := range r.tasks {
		if filter.AssigneeID != "" {
			if task.AssigneeID == nil || *task.AssigneeID != filter.AssigneeID {
				continue
			}
		}
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		result = append(result, *task)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func TestCreateTaskDefaultsPriority(t *testing.T) {
	repo := newFakeTasksRepo()
	svc := NewService(repo)

	created, err := svc.CreateTask(context.Background(), CreateTaskInput{Title: " Vacuum "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Title != "Vacuum" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.Priority != PriorityMedium {
		t.Fatalf("expected medium priority, got %q", created.Priority)
	}
	if created.Completed {
		t.Fatalf("expected new task pending")
	}
}

func TestCreateTaskRejectsUnknownPriority(t *testing.T) {
	svc := NewService(newFakeTasksRepo())

	_, err := svc.CreateTask(context.Background(), CreateTaskInput{Title: "Vacuum", Priority: "urgent"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestToggleCompletionTwiceRestoresState(t *testing.T) {
	repo := newFakeTasksRepo()
	repo.tasks["task-1"] = &Task{ID: "task-1", Title: "Vacuum", Priority: PriorityMedium}
	svc := NewService(repo)

	first, err := svc.ToggleCompletion(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !first.Completed {
		t.Fatalf("expected completed after first toggle")
	}

	second, err := svc.ToggleCompletion(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if second.Completed {
		t.Fatalf("expected pending after second toggle")
	}
}

func TestToggleCompletionNotFound(t *testing.T) {
	svc := NewService(newFakeTasksRepo())

	_, err := svc.ToggleCompletion(context.Background(), "missing")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateTaskPartial(t *testing.T) {
	repo := newFakeTasksRepo()
	description := "weekly"
	repo.tasks["task-1"] = &Task{ID: "task-1", Title: "Vacuum", Description: &description, Priority: PriorityMedium}
	svc := NewService(repo)

	priority := PriorityHigh
	updated, err := svc.UpdateTask(context.Background(), UpdateTaskInput{ID: "task-1", Priority: &priority})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Priority != PriorityHigh {
		t.Fatalf("expected priority updated, got %q", updated.Priority)
	}
	if updated.Title != "Vacuum" || updated.Description == nil || *updated.Description != "weekly" {
		t.Fatalf("expected other fields untouched, got %+v", updated)
	}
}

func TestUpdateTaskNoFields(t *testing.T) {
	svc := NewService(newFakeTasksRepo())

	_, err := svc.UpdateTask(context.Background(), UpdateTaskInput{ID: "task-1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListTasksFilters(t *testing.T) {
	repo := newFakeTasksRepo()
	assignee := "user-1"
	repo.tasks["task-1"] = &Task{ID: "task-1", Title: "Vacuum", AssigneeID: &assignee, Completed: true}
	repo.tasks["task-2"] = &Task{ID: "task-2", Title: "Dishes", AssigneeID: &assignee}
	repo.tasks["task-3"] = &Task{ID: "task-3", Title: "Trash"}
	svc := NewService(repo)

	completed := true
	result, err := svc.ListTasks(context.Background(), ListFilter{AssigneeID: assignee, Completed: &completed})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 1 || result[0].ID != "task-1" {
		t.Fatalf("expected only task-1, got %+v", result)
	}

	result, err = svc.ListTasks(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(result))
	}
}

func TestDeleteTaskNotFound(t *testing.T) {
	svc := NewService(newFakeTasksRepo())

	if err := svc.DeleteTask(context.Background(), "missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteTaskRemoves(t *testing.T) {
	repo := newFakeTasksRepo()
	due := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	repo.tasks["task-1"] = &Task{ID: "task-1", Title: "Vacuum", DueAt: &due}
	svc := NewService(repo)

	if err := svc.DeleteTask(context.Background(), "task-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.tasks) != 0 {
		t.Fatalf("expected task removed")
	}
}
