package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"productapi/internal/config"
	"productapi/internal/handler"
	"productapi/internal/infra/db"
	infraRepo "productapi/internal/infra/repository"
	"productapi/internal/logging"
	"productapi/internal/server"
	"productapi/internal/usecase"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/joho/godotenv"
)

func main() {
	//.envは任意
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	//DB接続
	gormDB, err := db.Connect(cfg, logger)
	if err != nil {
		logger.Error("connect database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(gormDB); err != nil {
			logger.Error("migrate database", "error", err)
			os.Exit(1)
		}
	}

	//Repository（GORM実装）→ Usecase → Handler
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	productUC := usecase.NewProductUsecase(productRepo)
	productH := handler.NewProductHandler(productUC, logger)
	healthH := handler.NewHealthHandler(func(ctx context.Context) error {
		return db.Ping(ctx, gormDB)
	}, logger)

	e := server.New(logger, productH, healthH)

	//Server起動
	go func() {
		logger.Info("server started", "addr", cfg.Addr, "driver", cfg.DBDriver)
		if err := server.Start(e, cfg.Addr); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	//SIGINT/SIGTERMでHTTP→DBの順に止める
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http": func(ctx context.Context) error {
				logger.Info("shutting down http server")
				if err := server.Shutdown(ctx, e); err != nil {
					return err
				}
				return db.Close(gormDB)
			},
		},
	)

	exitCode := <-wait
	logger.Info("exited", "code", exitCode)
	os.Exit(exitCode)
}
