package repository

import (
	"context"

	"app/internal/domain/model"
)

// 一覧・詳細で使う、作品情報をJOINした行
type OrderWithArtwork struct {
	model.Order       `gorm:"embedded"`
	ArtworkTitle      string `gorm:"column:artwork_title"`
	ArtworkImage      string `gorm:"column:artwork_image"`
	ArtworkPriceMinor int64  `gorm:"column:artwork_price_minor"`
	ArtworkCurrency   string `gorm:"column:artwork_currency"`
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (OrderWithArtwork, error)
	List(ctx context.Context) ([]OrderWithArtwork, error)

	// paymentID が nil なら status のみ更新
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, paymentID *string) error
}
