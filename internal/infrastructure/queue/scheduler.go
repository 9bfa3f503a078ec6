package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"social-analytics-backend/internal/shared"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// PERIODIC SCHEDULER
// =====================================================

// NewScheduler builds the asynq scheduler that refreshes collected
// data on a cron cadence. Registration happens before Run.
func NewScheduler(redisAddr, redisPassword string, redisDB int) *asynq.Scheduler {
	return asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		},
		&asynq.SchedulerOpts{},
	)
}

// RegisterPeriodicTasks wires the recurring collection sweeps.
func RegisterPeriodicTasks(scheduler *asynq.Scheduler, collectCron string) error {
	payload, err := json.Marshal(CollectAllPayload{Trigger: "scheduled"})
	if err != nil {
		return fmt.Errorf("failed to marshal scheduled payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeCollectAll, payload)
	entryID, err := scheduler.Register(collectCron, task,
		asynq.Queue(shared.QueueCollection),
		asynq.MaxRetry(2),
	)
	if err != nil {
		return fmt.Errorf("failed to register collect-all schedule: %w", err)
	}

	logger.Info("⏰ [SCHEDULER] Periodic collection registered", map[string]interface{}{
		"entry_id": entryID,
		"cron":     collectCron,
	})

	return nil
}
