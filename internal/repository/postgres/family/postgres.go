package family

import (
	"context"
	"errors"

	"gorm.io/gorm"

	familydomain "household-hub-go/internal/domain/family"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(familydomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateFamily(ctx context.Context, f *familydomain.Family) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *PostgresRepository) GetFamilyByID(ctx context.Context, familyID string) (*familydomain.Family, error) {
	var f familydomain.Family
	if err := r.db.WithContext(ctx).Where("id = ?", familyID).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrFamilyNotFound
		}
		return nil, err
	}
	return &f, nil
}

type memberRow struct {
	ID        string  `gorm:"column:id"`
	Name      string  `gorm:"column:name"`
	Email     string  `gorm:"column:email"`
	AvatarURL *string `gorm:"column:avatar_url"`
	FamilyID  *string `gorm:"column:family_id"`
}

func (r *PostgresRepository) GetMemberByID(ctx context.Context, userID string) (*familydomain.Member, error) {
	return r.getMember(ctx, "id = ?", userID)
}

func (r *PostgresRepository) GetMemberByEmail(ctx context.Context, email string) (*familydomain.Member, error) {
	return r.getMember(ctx, "email = ?", email)
}

func (r *PostgresRepository) getMember(ctx context.Context, cond string, arg any) (*familydomain.Member, error) {
	var row memberRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id, name, email, avatar_url, family_id").
		Where(cond, arg).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, familydomain.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	member := familydomain.Member(row)
	return &member, nil
}

func (r *PostgresRepository) ListMembers(ctx context.Context, familyID string) ([]familydomain.Member, error) {
	var rows []memberRow
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("id, name, email, avatar_url, family_id").
		Where("family_id = ?", familyID).
		Order("created_at asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	members := make([]familydomain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, familydomain.Member(row))
	}
	return members, nil
}

func (r *PostgresRepository) Reassign(ctx context.Context, userID string, familyID *string) error {
	result := r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", userID).
		Update("family_id", familyID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return familydomain.ErrMemberNotFound
	}
	return nil
}
