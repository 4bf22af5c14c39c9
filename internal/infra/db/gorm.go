package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"productapi/internal/config"
	"productapi/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dialector = postgres.Open(cfg.PostgresDSN())
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(logger, cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	return gormDB, nil
}

// gormのログをslogに流す
func NewGormLogger(logger *slog.Logger, level string) gormlogger.Interface {
	lv := gormlogger.Warn
	switch level {
	case "debug":
		lv = gormlogger.Info
	case "error":
		lv = gormlogger.Error
	}

	return gormlogger.New(
		slog.NewLogLogger(logger.With("component", "gorm").Handler(), slog.LevelInfo),
		gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  lv,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// テーブル作成
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// 疎通確認（/healthz用）
func Ping(ctx context.Context, gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
