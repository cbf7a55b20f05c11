package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type NewsGormRepository struct {
	db *gorm.DB
}

func NewNewsGormRepository(db *gorm.DB) *NewsGormRepository {
	return &NewsGormRepository{db: db}
}

// 公開日の新しい順
func (r *NewsGormRepository) List(ctx context.Context) ([]model.News, error) {
	var items []model.News
	err := r.db.WithContext(ctx).
		Order("published_at desc").Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.News{}, err
	}
	return items, nil
}

func (r *NewsGormRepository) FindByID(ctx context.Context, id int64) (model.News, error) {
	var n model.News
	err := r.db.WithContext(ctx).First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.News{}, repo.ErrNotFound
	}
	if err != nil {
		return model.News{}, err
	}
	return n, nil
}

func (r *NewsGormRepository) Create(ctx context.Context, n model.News) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&n).Error; err != nil {
		return 0, err
	}
	return n.ID, nil
}

func (r *NewsGormRepository) Update(ctx context.Context, n model.News) error {
	res := r.db.WithContext(ctx).Model(&model.News{}).Where("id = ?", n.ID).Updates(map[string]interface{}{
		"title":        n.Title,
		"content":      n.Content,
		"excerpt":      n.Excerpt,
		"image":        n.Image,
		"published_at": n.PublishedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *NewsGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.News{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
