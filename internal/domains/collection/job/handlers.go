// Package job holds the asynq task handlers executed by the worker.
package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"social-analytics-backend/internal/domains/collection/service"
	"social-analytics-backend/internal/infrastructure/queue"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// COLLECTION TASK HANDLERS
// =====================================================

type Handlers struct {
	service service.CollectionService
}

func NewHandlers(service service.CollectionService) *Handlers {
	return &Handlers{service: service}
}

// HandleScrapeAccount processes a single-account collection task.
func (h *Handlers) HandleScrapeAccount(ctx context.Context, task *asynq.Task) error {
	var payload queue.ScrapeAccountPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// Malformed payloads never succeed, do not retry.
		return fmt.Errorf("invalid scrape payload: %v: %w", err, asynq.SkipRetry)
	}

	logger.Info("⚙️ [WORKER] Processing scrape task", map[string]interface{}{
		"username": payload.Username,
	})

	result, err := h.service.ScrapeAccount(ctx, payload.Username)
	if err != nil {
		logger.Error("❌ [WORKER] Scrape task failed", err)
		return err
	}

	logger.Info("✅ [WORKER] Scrape task done", map[string]interface{}{
		"username":        result.Username,
		"posts_collected": result.PostsCollected,
		"source":          result.Source,
	})

	return nil
}

// HandleCollectAll processes a full sweep task.
func (h *Handlers) HandleCollectAll(ctx context.Context, task *asynq.Task) error {
	var payload queue.CollectAllPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid collect-all payload: %v: %w", err, asynq.SkipRetry)
	}

	logger.Info("⚙️ [WORKER] Processing collect-all task", map[string]interface{}{
		"trigger": payload.Trigger,
	})

	stats, err := h.service.CollectAll(ctx)
	if err != nil {
		logger.Error("❌ [WORKER] Collect-all task failed", err)
		return err
	}

	if stats.AccountsFailed > 0 {
		logger.Warn("⚠️ [WORKER] Sweep finished with failures",
			fmt.Errorf("%d of %d accounts failed", stats.AccountsFailed,
				stats.AccountsProcessed+stats.AccountsFailed))
	}

	return nil
}
