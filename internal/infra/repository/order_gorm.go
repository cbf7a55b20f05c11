package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

const orderArtworkSelect = "orders.*, artworks.title AS artwork_title, artworks.image AS artwork_image, " +
	"artworks.price_minor AS artwork_price_minor, artworks.currency AS artwork_currency"

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

// 作品タイトル・画像・価格をJOINして返す
func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (repo.OrderWithArtwork, error) {
	var row repo.OrderWithArtwork
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select(orderArtworkSelect).
		Joins("JOIN artworks ON artworks.id = orders.artwork_id").
		Where("orders.id = ?", orderID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.OrderWithArtwork{}, repo.ErrNotFound
	}
	if err != nil {
		return repo.OrderWithArtwork{}, err
	}
	return row, nil
}

func (r *OrderGormRepository) List(ctx context.Context) ([]repo.OrderWithArtwork, error) {
	var rows []repo.OrderWithArtwork
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select(orderArtworkSelect).
		Joins("JOIN artworks ON artworks.id = orders.artwork_id").
		Order("orders.created_at desc").Order("orders.id desc").
		Find(&rows).Error
	if err != nil {
		return []repo.OrderWithArtwork{}, err
	}
	return rows, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, paymentID *string) error {
	fields := map[string]interface{}{"status": status}
	if paymentID != nil {
		fields["payment_id"] = *paymentID
	}

	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
