package repository

import "context"

// 管理ダッシュボード用の集計値
type Stats struct {
	Artworks     int64
	Orders       int64
	News         int64
	Contacts     int64
	RevenueMinor int64
}

type StatsRepository interface {
	Snapshot(ctx context.Context) (Stats, error)
}
