package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"social-analytics-backend/pkg/container"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// HTTP SERVER
// =====================================================

const shutdownTimeout = 10 * time.Second

type Server struct {
	container *container.Container
	http      *http.Server
}

func NewServer(c *container.Container) *Server {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	registerRoutes(engine, c)

	return &Server{
		container: c,
		http: &http.Server{
			Addr:         ":" + c.Config.App.Port,
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("🌐 [SERVER] Listening", map[string]interface{}{
			"addr": s.http.Addr,
		})
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("🛑 [SERVER] Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info("👋 [SERVER] Stopped cleanly", nil)
	return nil
}
