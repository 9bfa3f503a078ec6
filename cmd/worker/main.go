package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"social-analytics-backend/internal/config"
	"social-analytics-backend/pkg/container"
	"social-analytics-backend/pkg/logger"
)

// The worker runs the background side of the system: asynq task
// processing plus the cron scheduler that keeps collected data fresh.
func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("⚠️ [WORKER] No .env file found, using environment", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("❌ [WORKER] Failed to load config", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("🚀 [WORKER] Starting worker", map[string]interface{}{
		"env":   cfg.App.Environment,
		"redis": cfg.Redis.Host,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	c, err := container.New(ctx, cfg)
	cancel()
	if err != nil {
		logger.Error("❌ [WORKER] Failed to build container", err)
		os.Exit(1)
	}
	defer c.Cleanup()

	// Make sure the default accounts exist before the first sweep.
	seedDefaultAccounts(context.Background(), c)

	server := newWorkerServer(cfg, c)
	scheduler, err := newCollectionScheduler(cfg)
	if err != nil {
		logger.Error("❌ [WORKER] Failed to build scheduler", err)
		os.Exit(1)
	}

	errCh := make(chan error, 2)
	go func() { errCh <- server.run() }()
	go func() { errCh <- scheduler.Run() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("❌ [WORKER] Component stopped with error", err)
		}
	case sig := <-quit:
		logger.Info("🛑 [WORKER] Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
	}

	scheduler.Shutdown()
	server.shutdown()
	logger.Info("👋 [WORKER] Stopped cleanly", nil)
}
