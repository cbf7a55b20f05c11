package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	artworks repo.ArtworkRepository
	orders   repo.OrderRepository
}

func (r *txReposGorm) Artworks() repo.ArtworkRepository { return r.artworks }
func (r *txReposGorm) Orders() repo.OrderRepository     { return r.orders }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			artworks: NewArtworkGormRepository(tx),
			orders:   NewOrderGormRepository(tx),
		}
		return fn(r)
	})
}
