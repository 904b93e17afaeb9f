package tasks

import (
	"context"
	"errors"

	"gorm.io/gorm"

	tasksdomain "household-hub-go/internal/domain/tasks"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(tasksdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Create(ctx context.Context, task *tasksdomain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, taskID string) (*tasksdomain.Task, error) {
	var task tasksdomain.Task
	if err := r.db.WithContext(ctx).Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tasksdomain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *PostgresRepository) Update(ctx context.Context, task *tasksdomain.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, taskID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&tasksdomain.Task{}, "id = ?", taskID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter tasksdomain.ListFilter) ([]tasksdomain.Task, error) {
	query := r.db.WithContext(ctx).Model(&tasksdomain.Task{})
	if filter.AssigneeID != "" {
		query = query.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}

	var result []tasksdomain.Task
	if err := query.Order("due_at ASC NULLS LAST, created_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}
