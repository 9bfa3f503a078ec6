package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"social-analytics-backend/internal/shared"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// TASK CLIENT
// =====================================================

// ScrapeAccountPayload is the payload of a single-account collection task.
type ScrapeAccountPayload struct {
	Username string `json:"username"`
}

// CollectAllPayload is the payload of a full collection sweep.
type CollectAllPayload struct {
	Trigger string `json:"trigger"`
}

// TaskClient enqueues background collection work.
type TaskClient struct {
	client *asynq.Client
}

func NewTaskClient(redisAddr, redisPassword string, redisDB int) *TaskClient {
	return &TaskClient{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

// EnqueueScrapeAccount schedules a one-off collection run for one account.
func (c *TaskClient) EnqueueScrapeAccount(ctx context.Context, username string) error {
	payload, err := json.Marshal(ScrapeAccountPayload{Username: username})
	if err != nil {
		return fmt.Errorf("failed to marshal scrape payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeScrapeAccount, payload)
	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueCollection),
		asynq.MaxRetry(3),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue scrape task: %w", err)
	}

	logger.Info("📤 [QUEUE] Scrape task enqueued", map[string]interface{}{
		"task_id":  info.ID,
		"username": username,
		"queue":    info.Queue,
	})

	return nil
}

// EnqueueCollectAll schedules a sweep over every tracked account.
func (c *TaskClient) EnqueueCollectAll(ctx context.Context, trigger string) error {
	payload, err := json.Marshal(CollectAllPayload{Trigger: trigger})
	if err != nil {
		return fmt.Errorf("failed to marshal collect-all payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeCollectAll, payload)
	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueCollection),
		asynq.MaxRetry(2),
		asynq.Timeout(30*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue collect-all task: %w", err)
	}

	logger.Info("📤 [QUEUE] Collect-all task enqueued", map[string]interface{}{
		"task_id": info.ID,
		"trigger": trigger,
	})

	return nil
}

func (c *TaskClient) Close() error {
	return c.client.Close()
}
