package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ArtworkGormRepository struct {
	db *gorm.DB
}

// DI
func NewArtworkGormRepository(db *gorm.DB) *ArtworkGormRepository {
	return &ArtworkGormRepository{db: db}
}

// 公開カタログ：availableのみ新着順。primary画像だけPreloadする
func (r *ArtworkGormRepository) ListAvailable(ctx context.Context) ([]model.Artwork, error) {
	var items []model.Artwork
	err := r.db.WithContext(ctx).
		Where("status = ?", model.ArtworkStatusAvailable).
		Preload("Images", "is_primary = ?", true).
		Order("created_at desc").Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Artwork{}, err
	}
	return items, nil
}

// 公開詳細：availableのみ。ギャラリーをsort_order順で返す
func (r *ArtworkGormRepository) FindAvailableByID(ctx context.Context, id int64) (model.Artwork, error) {
	var a model.Artwork
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, model.ArtworkStatusAvailable).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Artwork{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Artwork{}, err
	}
	return a, nil
}

func (r *ArtworkGormRepository) FindByID(ctx context.Context, id int64) (model.Artwork, error) {
	var a model.Artwork
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Artwork{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Artwork{}, err
	}
	return a, nil
}

// 画像はImagesに積んだ状態で渡す（関連ごと1トランザクションでINSERTされる）
func (r *ArtworkGormRepository) Create(ctx context.Context, a model.Artwork) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (r *ArtworkGormRepository) Update(ctx context.Context, a model.Artwork) error {
	res := r.db.WithContext(ctx).Model(&model.Artwork{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"title":            a.Title,
		"description":      a.Description,
		"full_description": a.FullDescription,
		"price_minor":      a.PriceMinor,
		"currency":         a.Currency,
		"size":             a.Size,
		"technique":        a.Technique,
		"year":             a.Year,
		"status":           a.Status,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 行は消さない。画像も残す
func (r *ArtworkGormRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&model.Artwork{}).
		Where("id = ?", id).
		Update("status", model.ArtworkStatusDeleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// availableのときだけsoldへ（勝者だけtrue）
func (r *ArtworkGormRepository) MarkSold(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Artwork{}).
		Where("id = ? AND status = ?", id, model.ArtworkStatusAvailable).
		Update("status", model.ArtworkStatusSold)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}
