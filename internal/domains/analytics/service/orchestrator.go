package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"social-analytics-backend/internal/domains/analytics/metrics"
	"social-analytics-backend/internal/domains/analytics/model"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// MULTI-ACCOUNT ORCHESTRATIONS
// =====================================================

// CompareAccounts runs the engagement and summary reports for each
// account and ranks the ones that succeeded. A failing account keeps
// its slot in the results with a failed status instead of failing the
// comparison.
func (s *analyticsService) CompareAccounts(ctx context.Context, usernames []string) (*model.AccountComparison, error) {
	if len(usernames) < 2 {
		return nil, &model.AnalyticsError{
			Code:    model.ErrCodeInvalidInput,
			Message: "Provide at least 2 usernames to compare",
		}
	}
	if len(usernames) > maxCompareAccounts {
		return nil, &model.AnalyticsError{
			Code:    model.ErrCodeTooManyAccounts,
			Message: fmt.Sprintf("Cannot compare more than %d accounts at once", maxCompareAccounts),
			Err:     model.ErrTooManyAccounts,
		}
	}

	results := make([]model.ComparisonEntry, 0, len(usernames))
	succeeded := []model.ComparisonEntry{}

	for _, username := range usernames {
		failed := func(err error) {
			logger.Warn("⚠️ [ANALYTICS] Comparison entry failed", err)
			results = append(results, model.ComparisonEntry{
				Username: username,
				Status:   "failed",
				Error:    err.Error(),
			})
		}

		engagement, err := s.GetEngagementRate(ctx, username)
		if err != nil {
			failed(err)
			continue
		}
		summary, err := s.GetAccountSummary(ctx, username)
		if err != nil {
			failed(err)
			continue
		}

		entry := model.ComparisonEntry{
			Username:       engagement.Username,
			FollowerCount:  summary.Account.FollowerCount,
			EngagementRate: engagement.EngagementRate,
			AvgEngagement:  engagement.AvgEngagement,
			PostsAnalyzed:  engagement.PostsAnalyzed,
			// Total posts is the whole stored history, not the
			// windowed count the rate was computed over.
			TotalPosts: summary.Content.PostsAnalyzed,
			Verified:   summary.Account.Verified,
		}
		results = append(results, entry)
		succeeded = append(succeeded, entry)
	}

	comparison := &model.AccountComparison{
		AccountsCompared: len(results),
		Results:          results,
		GeneratedAt:      s.timestamp(),
	}
	if len(succeeded) > 0 {
		comparison.Rankings = rankEntries(succeeded)
	}

	return comparison, nil
}

// rankEntries orders successful comparison entries three ways.
func rankEntries(entries []model.ComparisonEntry) *model.Rankings {
	rateOf := func(e model.ComparisonEntry) float64 {
		rate, _ := strconv.ParseFloat(e.EngagementRate, 64)
		return rate
	}

	byRate := append([]model.ComparisonEntry(nil), entries...)
	sort.SliceStable(byRate, func(i, j int) bool {
		return rateOf(byRate[i]) > rateOf(byRate[j])
	})

	byFollowers := append([]model.ComparisonEntry(nil), entries...)
	sort.SliceStable(byFollowers, func(i, j int) bool {
		return byFollowers[i].FollowerCount > byFollowers[j].FollowerCount
	})

	byPosts := append([]model.ComparisonEntry(nil), entries...)
	sort.SliceStable(byPosts, func(i, j int) bool {
		return byPosts[i].TotalPosts > byPosts[j].TotalPosts
	})

	names := func(list []model.ComparisonEntry) []string {
		out := make([]string, len(list))
		for i, e := range list {
			out[i] = e.Username
		}
		return out
	}

	return &model.Rankings{
		ByEngagementRate: names(byRate),
		ByFollowers:      names(byFollowers),
		ByTotalPosts:     names(byPosts),
	}
}

// BatchAnalytics runs the requested metric set per account. Metric
// failures are isolated per account and per metric.
func (s *analyticsService) BatchAnalytics(ctx context.Context, usernames, requestedMetrics []string) (*model.BatchResult, error) {
	if len(usernames) == 0 {
		return nil, &model.AnalyticsError{
			Code:    model.ErrCodeInvalidInput,
			Message: "Provide at least one username",
		}
	}
	if len(requestedMetrics) == 0 {
		requestedMetrics = []string{model.MetricEngagement, model.MetricSummary}
	}

	// Unknown tags are ignored, not fatal: a batch caller mixing one
	// bad tag into a long list still gets everything else.
	metricsToRun := make([]string, 0, len(requestedMetrics))
	for _, metric := range requestedMetrics {
		switch metric {
		case model.MetricEngagement, model.MetricSummary, model.MetricContent,
			model.MetricHashtags, model.MetricTiming:
			metricsToRun = append(metricsToRun, metric)
		default:
			logger.Info("ℹ️ [ANALYTICS] Ignoring unknown batch metric", map[string]interface{}{
				"metric": metric,
			})
		}
	}

	batch := &model.BatchResult{
		AccountsProcessed: len(usernames),
		MetricsRequested:  requestedMetrics,
		Results:           make(map[string]*model.AccountBatchResult, len(usernames)),
		GeneratedAt:       s.timestamp(),
	}

	for _, username := range usernames {
		result := &model.AccountBatchResult{}
		batch.Results[username] = result

		recordErr := func(metric string, err error) {
			if result.Errors == nil {
				result.Errors = make(map[string]string)
			}
			result.Errors[metric] = err.Error()
		}

		// Explicit dispatch keeps the metric surface auditable.
		for _, metric := range metricsToRun {
			switch metric {
			case model.MetricEngagement:
				view, err := s.GetEngagementRate(ctx, username)
				if err != nil {
					recordErr(metric, err)
					continue
				}
				result.Engagement = view
			case model.MetricSummary:
				view, err := s.GetAccountSummary(ctx, username)
				if err != nil {
					recordErr(metric, err)
					continue
				}
				result.Summary = view
			case model.MetricContent:
				view, err := s.GetContentPerformance(ctx, username)
				if err != nil {
					recordErr(metric, err)
					continue
				}
				result.Content = view
			case model.MetricHashtags:
				view, err := s.GetHashtagPerformance(ctx, username)
				if err != nil {
					recordErr(metric, err)
					continue
				}
				result.Hashtags = view
			case model.MetricTiming:
				view, err := s.GetTimingAnalysis(ctx, username)
				if err != nil {
					recordErr(metric, err)
					continue
				}
				result.Timing = view
			}
		}
	}

	return batch, nil
}

// =====================================================
// DASHBOARD
// =====================================================

// GetDashboard composes five reports into the consolidated view. The
// composers run concurrently and the dashboard fails as a whole if
// any of them fails; a half-filled dashboard would be misleading.
func (s *analyticsService) GetDashboard(ctx context.Context, username string) (*model.Dashboard, error) {
	cacheKey := fmt.Sprintf("analytics:dashboard:%s", username)

	if s.cache != nil {
		cached := &model.Dashboard{}
		if hit, err := s.cache.Get(ctx, cacheKey, cached); err == nil && hit {
			logger.Debug("💾 [CACHE] Dashboard served from cache", map[string]interface{}{
				"username": username,
			})
			return cached, nil
		}
	}

	var (
		wg         sync.WaitGroup
		engagement *model.EngagementResult
		summary    *model.AccountSummary
		content    *model.ContentPerformance
		hashtags   *model.HashtagPerformance
		timing     *model.TimingAnalysis

		engagementErr, summaryErr, contentErr, hashtagsErr, timingErr error
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		engagement, engagementErr = s.GetEngagementRate(ctx, username)
	}()
	go func() {
		defer wg.Done()
		summary, summaryErr = s.GetAccountSummary(ctx, username)
	}()
	go func() {
		defer wg.Done()
		content, contentErr = s.GetContentPerformance(ctx, username)
	}()
	go func() {
		defer wg.Done()
		hashtags, hashtagsErr = s.GetHashtagPerformance(ctx, username)
	}()
	go func() {
		defer wg.Done()
		timing, timingErr = s.GetTimingAnalysis(ctx, username)
	}()
	wg.Wait()

	// Fixed reporting order keeps the surfaced error deterministic.
	for _, err := range []error{engagementErr, summaryErr, contentErr, hashtagsErr, timingErr} {
		if err != nil {
			return nil, err
		}
	}

	rate := metrics.EngagementRate(float64(engagement.AvgEngagement), engagement.FollowerCount)

	var bestHour interface{}
	if timing.BestHour != nil {
		bestHour = timing.BestHour.Hour
	}
	postingDay := ""
	if timing.BestDay != nil {
		postingDay = timing.BestDay.Day
	}

	topTags := []string{}
	for i, t := range hashtags.TopPerforming {
		if i == 5 {
			break
		}
		topTags = append(topTags, t.Hashtag)
	}

	dashboard := &model.Dashboard{
		Username:        engagement.Username,
		AccountOverview: summary.Account,
		QuickStats: model.QuickStats{
			EngagementRate:   engagement.EngagementRate,
			AvgLikes:         summary.Performance.AvgLikes,
			AvgComments:      summary.Performance.AvgComments,
			PostingFrequency: summary.Content.PostingFrequency,
		},
		Insights: model.DashboardInsights{
			BestPostingHour:   bestHour,
			OptimalPostingDay: postingDay,
			TopHashtags:       topTags,
			BestMediaType:     content.BestMediaType,
		},
		Indicators:  gradeIndicators(rate, summary, hashtags),
		GeneratedAt: s.timestamp(),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, dashboard, s.dashboardTTL); err != nil {
			logger.Warn("⚠️ [CACHE] Failed to cache dashboard", err)
		}
	}

	return dashboard, nil
}

// gradeIndicators applies the fixed grading thresholds.
func gradeIndicators(rate float64, summary *model.AccountSummary, hashtags *model.HashtagPerformance) model.PerformanceIndicators {
	indicators := model.PerformanceIndicators{
		EngagementTrend:      "needs_improvement",
		ContentConsistency:   "low",
		HashtagEffectiveness: "medium",
	}

	if rate > 2 {
		indicators.EngagementTrend = "excellent"
	} else if rate > 1 {
		indicators.EngagementTrend = "good"
	}

	if summary.Content.RecentPosts7Days > 3 {
		indicators.ContentConsistency = "high"
	} else if summary.Content.RecentPosts7Days > 1 {
		indicators.ContentConsistency = "medium"
	}

	if hashtags.UniqueHashtags > 5 {
		indicators.HashtagEffectiveness = "high"
	}

	return indicators
}

// =====================================================
// DISCOVERY + HEALTH
// =====================================================

// GetAvailableAccounts lists the top 20 tracked accounts by follower
// count with their stored post counts.
func (s *analyticsService) GetAvailableAccounts(ctx context.Context) ([]model.AvailableAccount, error) {
	accounts, err := s.accounts.List(ctx, availableAccountsLimit, 0)
	if err != nil {
		return nil, err
	}

	available := make([]model.AvailableAccount, 0, len(accounts))
	for _, account := range accounts {
		tracked, err := s.posts.CountByUsername(ctx, account.Username)
		if err != nil {
			return nil, err
		}
		available = append(available, model.AvailableAccount{
			Username:      account.Username,
			DisplayName:   account.DisplayName,
			FollowerCount: account.FollowerCount,
			PostsTracked:  tracked,
		})
	}

	return available, nil
}

// HealthCheck reports store counts, fresh-data volume and a sample
// account proving the analytics endpoints have something to chew on.
func (s *analyticsService) HealthCheck(ctx context.Context) (*model.HealthReport, error) {
	accountCount, err := s.accounts.Count(ctx)
	if err != nil {
		return nil, err
	}
	postCount, err := s.posts.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.posts.CountCollectedSince(ctx, s.now().Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}

	report := &model.HealthReport{
		AccountsTracked: accountCount,
		PostsStored:     postCount,
		PostsLast24h:    recent,
		AvailableAnalytics: []string{
			"engagement", "summary", "content", "hashtags",
			"timing", "growth", "strategy", "compare", "batch", "dashboard",
		},
		CheckedAt: s.timestamp(),
	}

	if accountCount > 0 && postCount > 0 {
		report.Status = "Ready"
	} else {
		report.Status = "Waiting for data"
	}

	if top, err := s.accounts.TopByFollowers(ctx, 1); err == nil && len(top) > 0 {
		tracked, err := s.posts.CountByUsername(ctx, top[0].Username)
		if err == nil {
			report.SampleAccount = &model.HealthSample{
				Username:      top[0].Username,
				FollowerCount: top[0].FollowerCount,
				PostsTracked:  tracked,
			}
		}
	}

	return report, nil
}
