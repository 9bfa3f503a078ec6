package main

import (
	"github.com/hibiken/asynq"

	"social-analytics-backend/internal/config"
	"social-analytics-backend/internal/domains/collection/job"
	"social-analytics-backend/internal/shared"
	"social-analytics-backend/pkg/container"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// ASYNQ SERVER
// =====================================================

type workerServer struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func newWorkerServer(cfg *config.Config, c *container.Container) *workerServer {
	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 5,
			// Collection gets the bulk of the capacity; default is a
			// spillover lane.
			Queues: map[string]int{
				shared.QueueCollection: 7,
				shared.QueueDefault:    3,
			},
		},
	)

	handlers := job.NewHandlers(c.CollectionService)

	mux := asynq.NewServeMux()
	mux.HandleFunc(shared.TypeScrapeAccount, handlers.HandleScrapeAccount)
	mux.HandleFunc(shared.TypeCollectAll, handlers.HandleCollectAll)

	return &workerServer{server: server, mux: mux}
}

func (w *workerServer) run() error {
	logger.Info("⚙️ [WORKER] Task server running", map[string]interface{}{
		"queues": []string{shared.QueueCollection, shared.QueueDefault},
	})
	return w.server.Run(w.mux)
}

func (w *workerServer) shutdown() {
	w.server.Shutdown()
}
