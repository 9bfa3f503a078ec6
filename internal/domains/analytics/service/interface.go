package service

import (
	"context"

	"social-analytics-backend/internal/domains/analytics/model"
)

// AnalyticsService computes every derived view over collected account
// and post data. Single-account reports return a zero-value view with
// a Message when the account exists but has no posts; an unknown
// account is an error.
type AnalyticsService interface {
	// Single-account reports
	GetEngagementRate(ctx context.Context, username string) (*model.EngagementResult, error)
	GetAccountSummary(ctx context.Context, username string) (*model.AccountSummary, error)
	GetContentPerformance(ctx context.Context, username string) (*model.ContentPerformance, error)
	GetHashtagPerformance(ctx context.Context, username string) (*model.HashtagPerformance, error)
	GetTimingAnalysis(ctx context.Context, username string) (*model.TimingAnalysis, error)
	GetGrowthTrend(ctx context.Context, username string, periodDays int) (*model.GrowthTrend, error)
	GetContentStrategy(ctx context.Context, username string) (*model.ContentStrategy, error)

	// Multi-account orchestrations
	CompareAccounts(ctx context.Context, usernames []string) (*model.AccountComparison, error)
	BatchAnalytics(ctx context.Context, usernames, requestedMetrics []string) (*model.BatchResult, error)
	GetDashboard(ctx context.Context, username string) (*model.Dashboard, error)

	// Discovery and health
	GetAvailableAccounts(ctx context.Context) ([]model.AvailableAccount, error)
	HealthCheck(ctx context.Context) (*model.HealthReport, error)
}
