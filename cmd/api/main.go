package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := setupLogger(cfg.GoEnv)

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Artwork{},
		&model.ArtworkImage{},
		&model.Order{},
		&model.Contact{},
		&model.News{},
	); err != nil {
		panic(err)
	}

	//アップロード先を用意
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	artworkRepo := infraRepo.NewArtworkGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	contactRepo := infraRepo.NewContactGormRepository(gormDB)
	newsRepo := infraRepo.NewNewsGormRepository(gormDB)
	statsRepo := infraRepo.NewStatsGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	artworkUC := usecase.NewArtworkUsecase(artworkRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, log)
	contactUC := usecase.NewContactUsecase(contactRepo)
	newsUC := usecase.NewNewsUsecase(newsRepo)
	adminUC := usecase.NewAdminUsecase(cfg, statsRepo, log)

	//Handler生成
	artworkH := handler.NewArtworkHandler(artworkUC)
	orderH := handler.NewOrderHandler(orderUC)
	contactH := handler.NewContactHandler(contactUC)
	newsH := handler.NewNewsHandler(newsUC)
	adminH := handler.NewAdminHandler(adminUC, cfg)

	e := server.New(cfg, log, artworkH, orderH, contactH, newsH, adminH)

	//Server起動
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info("server stopped", slog.String("reason", err.Error()))
		}
	}()

	//Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("shutdown", slog.String("err", err.Error()))
	}
}

func setupLogger(env string) *slog.Logger {
	if env == "prod" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
