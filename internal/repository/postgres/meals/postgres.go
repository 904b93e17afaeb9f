package meals

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	mealsdomain "household-hub-go/internal/domain/meals"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, meal *mealsdomain.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, mealID string) (*mealsdomain.Meal, error) {
	var meal mealsdomain.Meal
	if err := r.db.WithContext(ctx).Where("id = ?", mealID).First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mealsdomain.ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *PostgresRepository) Update(ctx context.Context, meal *mealsdomain.Meal) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, mealID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&mealsdomain.Meal{}, "id = ?", mealID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string, from, to *time.Time) ([]mealsdomain.Meal, error) {
	query := r.db.WithContext(ctx).Model(&mealsdomain.Meal{}).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var result []mealsdomain.Meal
	if err := query.Order("date ASC, created_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetPreferences(ctx context.Context, userID string) (*mealsdomain.Preferences, error) {
	var prefs mealsdomain.Preferences
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prefs, nil
}
