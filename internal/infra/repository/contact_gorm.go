package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type ContactGormRepository struct {
	db *gorm.DB
}

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) Create(ctx context.Context, c model.Contact) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r *ContactGormRepository) List(ctx context.Context) ([]model.Contact, error) {
	var items []model.Contact
	err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Contact{}, err
	}
	return items, nil
}

// 対象が無くてもエラーにしない（冪等）
func (r *ContactGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Contact{}, id).Error
}
