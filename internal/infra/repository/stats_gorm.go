package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

// 入金済み以降のステータス（売上集計の対象）
var revenueStatuses = []model.OrderStatus{
	model.OrderStatusPaid,
	model.OrderStatusProcessing,
	model.OrderStatusShipped,
	model.OrderStatusDelivered,
}

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

func (r *StatsGormRepository) Snapshot(ctx context.Context) (repo.Stats, error) {
	var s repo.Stats
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Artwork{}).Count(&s.Artworks).Error; err != nil {
		return repo.Stats{}, err
	}
	if err := db.Model(&model.Order{}).Count(&s.Orders).Error; err != nil {
		return repo.Stats{}, err
	}
	if err := db.Model(&model.News{}).Count(&s.News).Error; err != nil {
		return repo.Stats{}, err
	}
	if err := db.Model(&model.Contact{}).Count(&s.Contacts).Error; err != nil {
		return repo.Stats{}, err
	}

	err := db.Model(&model.Order{}).
		Where("status IN ?", revenueStatuses).
		Select("COALESCE(SUM(total_minor), 0)").
		Scan(&s.RevenueMinor).Error
	if err != nil {
		return repo.Stats{}, err
	}

	return s, nil
}
