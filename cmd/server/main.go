package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/api"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/config"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/game"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	newTable := func(bankroll int) *game.Table { return game.NewTable(bankroll) }
	tables := game.NewManager(func() *game.Table { return newTable(cfg.StartBalance) })

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      api.NewServer(tables, newTable, cfg.StartBalance, logger).Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
