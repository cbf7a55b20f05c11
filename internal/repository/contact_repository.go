package repository

import (
	"context"

	"app/internal/domain/model"
)

type ContactRepository interface {
	Create(ctx context.Context, c model.Contact) (int64, error)
	List(ctx context.Context) ([]model.Contact, error)

	// 冪等：存在しないidの削除もエラーにしない
	Delete(ctx context.Context, id int64) error
}
