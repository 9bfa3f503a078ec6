package main

import (
	"github.com/hibiken/asynq"

	"social-analytics-backend/internal/config"
	"social-analytics-backend/internal/infrastructure/queue"
)

// newCollectionScheduler builds the cron scheduler with the periodic
// collection sweep registered.
func newCollectionScheduler(cfg *config.Config) (*asynq.Scheduler, error) {
	scheduler := queue.NewScheduler(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	if err := queue.RegisterPeriodicTasks(scheduler, cfg.Collector.CollectCron); err != nil {
		return nil, err
	}

	return scheduler, nil
}
