package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ilinovom/company-info-bot/internal/app"
	"github.com/ilinovom/company-info-bot/internal/config"
	"github.com/ilinovom/company-info-bot/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	application, err := app.New(cfg, zl)
	if err != nil {
		zl.Fatal("app init failed", zap.Error(err))
	}
	if err := application.Run(context.Background()); err != nil {
		zl.Fatal("app run failed", zap.Error(err))
	}
}
