package shopping

import (
	"context"
	"errors"

	"gorm.io/gorm"

	shoppingdomain "household-hub-go/internal/domain/shopping"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(shoppingdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Create(ctx context.Context, item *shoppingdomain.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, itemID string) (*shoppingdomain.Item, error) {
	var item shoppingdomain.Item
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoppingdomain.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) Update(ctx context.Context, item *shoppingdomain.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, itemID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&shoppingdomain.Item{}, "id = ?", itemID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter shoppingdomain.ListFilter) ([]shoppingdomain.Item, error) {
	query := r.db.WithContext(ctx).Model(&shoppingdomain.Item{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Purchased != nil {
		query = query.Where("purchased = ?", *filter.Purchased)
	}

	var result []shoppingdomain.Item
	if err := query.Order("created_at DESC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}
