package server

import (
	"log/slog"
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// New はechoを組み立ててルートを登録する。
func New(
	cfg config.Config,
	log *slog.Logger,
	artworkH *handler.ArtworkHandler,
	orderH *handler.OrderHandler,
	contactH *handler.ContactHandler,
	newsH *handler.NewsHandler,
	adminH *handler.AdminHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	//アクセスログはslogへ
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("err", v.Error.Error()))
				log.Error("request", attrs...)
				return nil
			}
			log.Info("request", attrs...)
			return nil
		},
	}))

	e.GET("/health", health)
	e.Static("/uploads", cfg.UploadDir)

	artworkH.RegisterRoutes(e, cfg)
	orderH.RegisterRoutes(e, cfg)
	contactH.RegisterRoutes(e, cfg)
	newsH.RegisterRoutes(e, cfg)
	adminH.RegisterRoutes(e, cfg)

	return e
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
