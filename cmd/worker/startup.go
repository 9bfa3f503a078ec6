package main

import (
	"context"
	"time"

	accountModel "social-analytics-backend/internal/domains/account/model"
	"social-analytics-backend/pkg/container"
	"social-analytics-backend/pkg/logger"
)

// seedDefaultAccounts registers the configured starter accounts and
// schedules their first collection. Already-tracked accounts are left
// alone so reseeding on every restart stays cheap.
func seedDefaultAccounts(ctx context.Context, c *container.Container) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, username := range c.Config.Collector.DefaultAccounts {
		username = accountModel.NormalizeUsername(username)

		if _, err := c.AccountRepo.GetByUsername(ctx, username); err == nil {
			continue
		}

		stub := accountModel.NewAccountStub(username, accountModel.AccountTypePersonal)
		if err := c.AccountRepo.Upsert(ctx, stub); err != nil {
			logger.Warn("⚠️ [WORKER] Failed to seed account", err)
			continue
		}

		if err := c.TaskClient.EnqueueScrapeAccount(ctx, username); err != nil {
			logger.Warn("⚠️ [WORKER] Failed to schedule seeded account", err)
			continue
		}

		logger.Info("🌱 [WORKER] Seeded default account", map[string]interface{}{
			"username": username,
		})
	}
}
