package repository

import (
	"context"

	"app/internal/domain/model"
)

type NewsRepository interface {
	List(ctx context.Context) ([]model.News, error)
	FindByID(ctx context.Context, id int64) (model.News, error)
	Create(ctx context.Context, n model.News) (int64, error)
	Update(ctx context.Context, n model.News) error
	Delete(ctx context.Context, id int64) error
}
