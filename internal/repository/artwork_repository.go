package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 作品の永続化（保存・取得）だけを約束。
type ArtworkRepository interface {
	// 公開中（available）のみ、新着順。プライマリ画像をPreloadして返す
	ListAvailable(ctx context.Context) ([]model.Artwork, error)

	// 公開中のみ。画廊ページ用にギャラリー画像をsort_order順でPreload
	FindAvailableByID(ctx context.Context, id int64) (model.Artwork, error)

	// ステータスを問わず取得（管理画面用）
	FindByID(ctx context.Context, id int64) (model.Artwork, error)

	Create(ctx context.Context, a model.Artwork) (int64, error)
	Update(ctx context.Context, a model.Artwork) error
	SoftDelete(ctx context.Context, id int64) error

	// available のときだけ sold に更新（compare-and-set）。
	// 更新できたら true。同時購入はどちらか一方だけが true を得る
	MarkSold(ctx context.Context, id int64) (bool, error)
}
