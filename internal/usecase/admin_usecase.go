package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/domain/money"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// bearerトークンの有効期限
const adminTokenTTL = 24 * time.Hour

type AdminUsecase struct {
	cfg       config.Config
	statsRepo repo.StatsRepository
	log       *slog.Logger
}

func NewAdminUsecase(cfg config.Config, statsRepo repo.StatsRepository, log *slog.Logger) *AdminUsecase {
	return &AdminUsecase{cfg: cfg, statsRepo: statsRepo, log: log}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token string `json:"token"`
}

// Login は単一の管理者アカウントと照合する。
// メール違い・パスワード違いで応答を変えない（列挙対策）
func (u *AdminUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	if in.Email != u.cfg.AdminEmail {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword(u.cfg.AdminPasswordHash, []byte(in.Password)); err != nil {
		u.log.Warn("admin login failed")
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email": in.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(adminTokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	u.log.Info("admin logged in")
	return LoginOutput{Token: signed}, nil
}

type StatsOutput struct {
	Artworks     int64  `json:"artworks"`
	Orders       int64  `json:"orders"`
	News         int64  `json:"news"`
	Contacts     int64  `json:"contacts"`
	Revenue      string `json:"revenue"`
	RevenueMinor int64  `json:"revenue_minor"`
}

func (u *AdminUsecase) Stats(ctx context.Context) (StatsOutput, error) {
	s, err := u.statsRepo.Snapshot(ctx)
	if err != nil {
		return StatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return StatsOutput{
		Artworks:     s.Artworks,
		Orders:       s.Orders,
		News:         s.News,
		Contacts:     s.Contacts,
		Revenue:      money.Money{Minor: s.RevenueMinor, Currency: money.DefaultCurrency}.Display(),
		RevenueMinor: s.RevenueMinor,
	}, nil
}
