package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"social-analytics-backend/internal/config"
	"social-analytics-backend/pkg/container"
	"social-analytics-backend/pkg/logger"
)

func main() {
	// .env is optional, real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logger.Warn("⚠️ [STARTUP] No .env file found, using environment", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("❌ [STARTUP] Failed to load config", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("🚀 [STARTUP] Starting API server", map[string]interface{}{
		"name":    cfg.App.Name,
		"env":     cfg.App.Environment,
		"version": cfg.App.Version,
		"port":    cfg.App.Port,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	c, err := container.New(ctx, cfg)
	cancel()
	if err != nil {
		logger.Error("❌ [STARTUP] Failed to build container", err)
		os.Exit(1)
	}
	defer c.Cleanup()

	server := NewServer(c)
	if err := server.Run(); err != nil {
		logger.Error("❌ [STARTUP] Server stopped with error", err)
		os.Exit(1)
	}
}
