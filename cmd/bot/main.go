package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/bot"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/config"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/database"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/logging"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/player"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireBotToken(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var playerRepo player.Repository
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer pool.Close()
		playerRepo = player.NewPostgresRepository(pool.Pool)
		logger.Info("database connected", zap.String("driver", "postgres"))
	} else {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		playerRepo = player.NewRepository(db.DB)
		logger.Info("database connected", zap.String("driver", "sqlite3"), zap.String("path", cfg.DatabasePath))
	}

	b, err := bot.New(cfg, playerRepo, logger)
	if err != nil {
		logger.Fatal("failed to create bot", zap.Error(err))
	}

	if err := b.Run(ctx); err != nil {
		logger.Fatal("bot error", zap.Error(err))
	}
}
