package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"social-analytics-backend/internal/domains/analytics/metrics"
	"social-analytics-backend/internal/domains/analytics/model"
	postModel "social-analytics-backend/internal/domains/post/model"
	postRepo "social-analytics-backend/internal/domains/post/repository"
)

// =====================================================
// HASHTAG PERFORMANCE
// =====================================================

// GetHashtagPerformance ranks every hashtag the account used by the
// average engagement of the posts carrying it.
func (s *analyticsService) GetHashtagPerformance(ctx context.Context, username string) (*model.HashtagPerformance, error) {
	account, err := s.loadAccount(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.GetByUsername(ctx, account.Username, postRepo.SortByTimestamp, 0)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return &model.HashtagPerformance{
			Username:        account.Username,
			TopPerforming:   []model.HashtagStats{},
			WorstPerforming: []model.HashtagStats{},
			Message:         fmt.Sprintf("No posts found for %s", account.Username),
		}, nil
	}

	// Step 1: aggregate per hashtag, preserving first-seen order so
	// equal-engagement tags rank deterministically.
	type tagAgg struct {
		count, likes, comments, engagement int
	}
	aggs := map[string]*tagAgg{}
	order := []string{}
	for i := range posts {
		p := &posts[i]
		for _, tag := range p.Hashtags {
			agg, ok := aggs[tag]
			if !ok {
				agg = &tagAgg{}
				aggs[tag] = agg
				order = append(order, tag)
			}
			agg.count++
			agg.likes += p.LikeCount
			agg.comments += p.CommentCount
			agg.engagement += p.Engagement()
		}
	}

	if len(order) == 0 {
		return &model.HashtagPerformance{
			Username:        account.Username,
			PostsAnalyzed:   len(posts),
			TopPerforming:   []model.HashtagStats{},
			WorstPerforming: []model.HashtagStats{},
			Message:         fmt.Sprintf("No hashtags found in posts for %s", account.Username),
		}, nil
	}

	stats := make([]model.HashtagStats, 0, len(order))
	for _, tag := range order {
		agg := aggs[tag]
		pct := float64(agg.count) / float64(len(posts)) * 100
		stats = append(stats, model.HashtagStats{
			Hashtag:        tag,
			UsageCount:     agg.count,
			AvgLikes:       metrics.Average(agg.likes, agg.count),
			AvgComments:    metrics.Average(agg.comments, agg.count),
			AvgEngagement:  metrics.Average(agg.engagement, agg.count),
			UsageFrequency: fmt.Sprintf("%.1f%%", pct),
		})
	}

	// Step 2: rank by average engagement, best first
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AvgEngagement > stats[j].AvgEngagement
	})

	top := stats
	if len(top) > 10 {
		top = top[:10]
	}
	worst := stats
	if len(worst) > 5 {
		worst = worst[len(worst)-5:]
	}

	keep := []string{}
	for i := 0; i < len(top) && i < 5; i++ {
		keep = append(keep, top[i].Hashtag)
	}
	drop := []string{}
	start := len(worst) - 3
	if start < 0 {
		start = 0
	}
	for _, w := range worst[start:] {
		drop = append(drop, w.Hashtag)
	}

	return &model.HashtagPerformance{
		Username:        account.Username,
		PostsAnalyzed:   len(posts),
		UniqueHashtags:  len(order),
		TopPerforming:   top,
		WorstPerforming: worst,
		Recommendations: model.HashtagRecommendations{
			KeepUsing:    keep,
			ConsiderDrop: drop,
			Tip:          "Use 8-12 hashtags per post for optimal reach",
		},
	}, nil
}

// =====================================================
// TIMING ANALYSIS
// =====================================================

// GetTimingAnalysis partitions posts by hour of day and day of week
// and names the strongest slot on each axis. The two partitions are
// independent, so best_hour and best_day can come from different posts.
func (s *analyticsService) GetTimingAnalysis(ctx context.Context, username string) (*model.TimingAnalysis, error) {
	account, err := s.loadAccount(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.GetByUsername(ctx, account.Username, postRepo.SortByTimestamp, 0)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return &model.TimingAnalysis{
			Username:        account.Username,
			HourlyBreakdown: []model.HourStats{},
			DailyBreakdown:  []model.DayStats{},
			Message:         fmt.Sprintf("No posts found for %s", account.Username),
		}, nil
	}

	type slotAgg struct {
		count, likes, engagement int
	}
	var hours [24]slotAgg
	var days [7]slotAgg
	minTS, maxTS := posts[0].PostTimestamp, posts[0].PostTimestamp

	for i := range posts {
		p := &posts[i]
		ts := p.PostTimestamp
		if ts.Before(minTS) {
			minTS = ts
		}
		if ts.After(maxTS) {
			maxTS = ts
		}
		h := &hours[ts.Hour()]
		h.count++
		h.likes += p.LikeCount
		h.engagement += p.Engagement()
		d := &days[int(ts.Weekday())]
		d.count++
		d.likes += p.LikeCount
		d.engagement += p.Engagement()
	}

	// Slots are collected in ascending order, then stable-sorted by
	// engagement so the earliest slot wins ties and ranks first.
	hourly := []model.HourStats{}
	for h := 0; h < 24; h++ {
		if hours[h].count == 0 {
			continue
		}
		hourly = append(hourly, model.HourStats{
			Hour:          h,
			PostCount:     hours[h].count,
			AvgLikes:      metrics.Average(hours[h].likes, hours[h].count),
			AvgEngagement: metrics.Average(hours[h].engagement, hours[h].count),
		})
	}
	sort.SliceStable(hourly, func(i, j int) bool {
		return hourly[i].AvgEngagement > hourly[j].AvgEngagement
	})

	daily := []model.DayStats{}
	for d := 0; d < 7; d++ {
		if days[d].count == 0 {
			continue
		}
		daily = append(daily, model.DayStats{
			Day:           time.Weekday(d).String(),
			PostCount:     days[d].count,
			AvgLikes:      metrics.Average(days[d].likes, days[d].count),
			AvgEngagement: metrics.Average(days[d].engagement, days[d].count),
		})
	}
	sort.SliceStable(daily, func(i, j int) bool {
		return daily[i].AvgEngagement > daily[j].AvgEngagement
	})

	var bestHour *model.HourStats
	if len(hourly) > 0 {
		bestHour = &hourly[0]
	}
	var bestDay *model.DayStats
	if len(daily) > 0 {
		bestDay = &daily[0]
	}

	recommendation := ""
	if bestHour != nil && bestDay != nil {
		recommendation = fmt.Sprintf("Post at %d:00 on %ss for maximum engagement", bestHour.Hour, bestDay.Day)
	}

	return &model.TimingAnalysis{
		Username:      account.Username,
		PostsAnalyzed: len(posts),
		DateRange: &model.DateRange{
			From: minTS.UTC().Format(time.RFC3339),
			To:   maxTS.UTC().Format(time.RFC3339),
		},
		BestHour:        bestHour,
		BestDay:         bestDay,
		HourlyBreakdown: hourly,
		DailyBreakdown:  daily,
		Recommendation:  recommendation,
	}, nil
}

// =====================================================
// GROWTH TREND
// =====================================================

// GetGrowthTrend buckets the period's posts into calendar weeks keyed
// by the preceding Sunday and compares first week against last.
func (s *analyticsService) GetGrowthTrend(ctx context.Context, username string, periodDays int) (*model.GrowthTrend, error) {
	account, err := s.loadAccount(ctx, username)
	if err != nil {
		return nil, err
	}
	if periodDays <= 0 {
		periodDays = defaultPeriodDays
	}

	cutoff := s.now().AddDate(0, 0, -periodDays)
	posts, err := s.posts.GetByUsernameSince(ctx, account.Username, cutoff)
	if err != nil {
		return nil, err
	}

	trend := &model.GrowthTrend{
		Username:    account.Username,
		PeriodDays:  periodDays,
		WeeklyStats: []model.WeekStats{},
		Trend:       model.TrendSummary{Direction: model.TrendNoData, ChangePercent: "0.0"},
	}
	if len(posts) == 0 {
		trend.Message = fmt.Sprintf("No posts in the last %d days for %s", periodDays, account.Username)
		return trend, nil
	}

	// Step 1: bucket into weeks
	type weekAgg struct {
		count, likes, comments int
	}
	weeks := map[string]*weekAgg{}
	weekKeys := []string{}
	for i := range posts {
		key := weekStart(posts[i].PostTimestamp)
		agg, ok := weeks[key]
		if !ok {
			agg = &weekAgg{}
			weeks[key] = agg
			weekKeys = append(weekKeys, key)
		}
		agg.count++
		agg.likes += posts[i].LikeCount
		agg.comments += posts[i].CommentCount
	}
	sort.Strings(weekKeys)

	totalPosts := 0
	for _, key := range weekKeys {
		agg := weeks[key]
		totalPosts += agg.count
		trend.WeeklyStats = append(trend.WeeklyStats, model.WeekStats{
			Week:          key,
			PostCount:     agg.count,
			TotalLikes:    agg.likes,
			TotalComments: agg.comments,
			AvgEngagement: metrics.Average(agg.likes+agg.comments, agg.count),
		})
	}
	trend.WeeksAnalyzed = len(trend.WeeklyStats)

	// A single week cannot show a direction.
	if trend.WeeksAnalyzed < 2 {
		trend.Trend.AvgPostsPerWeek = metrics.RoundTo(float64(totalPosts)/float64(trend.WeeksAnalyzed), 1)
		trend.Message = "Not enough history to compute a trend, need at least two weeks of posts"
		return trend, nil
	}

	// Step 2: direction from first vs last week
	first := trend.WeeklyStats[0]
	last := trend.WeeklyStats[len(trend.WeeklyStats)-1]

	var changePct float64
	switch {
	case first.AvgEngagement > 0:
		changePct = float64(last.AvgEngagement-first.AvgEngagement) / float64(first.AvgEngagement) * 100
	case last.AvgEngagement > 0:
		changePct = 100
	}

	direction := model.TrendStable
	if changePct > 10 {
		direction = model.TrendGrowing
	} else if changePct < -10 {
		direction = model.TrendDeclining
	}

	best, worst := trend.WeeklyStats[0], trend.WeeklyStats[0]
	for _, w := range trend.WeeklyStats[1:] {
		if w.AvgEngagement > best.AvgEngagement {
			best = w
		}
		if w.AvgEngagement < worst.AvgEngagement {
			worst = w
		}
	}

	trend.Trend = model.TrendSummary{
		Direction:       direction,
		ChangePercent:   fmt.Sprintf("%.1f", changePct),
		BestWeek:        &best,
		WorstWeek:       &worst,
		AvgPostsPerWeek: metrics.RoundTo(float64(totalPosts)/float64(trend.WeeksAnalyzed), 1),
	}

	return trend, nil
}

// weekStart returns the ISO date of the Sunday starting the week the
// timestamp falls in.
func weekStart(ts time.Time) string {
	ts = ts.UTC()
	sunday := ts.AddDate(0, 0, -int(ts.Weekday()))
	return sunday.Format("2006-01-02")
}

// =====================================================
// CONTENT STRATEGY
// =====================================================

// GetContentStrategy grades the account against industry engagement
// tiers and assembles an action plan from the other reports.
func (s *analyticsService) GetContentStrategy(ctx context.Context, username string) (*model.ContentStrategy, error) {
	engagement, err := s.GetEngagementRate(ctx, username)
	if err != nil {
		return nil, err
	}

	strategy := &model.ContentStrategy{
		Username:           engagement.Username,
		CurrentPerformance: engagement.EngagementRate + "%",
		GeneratedAt:        s.timestamp(),
	}
	if engagement.PostsAnalyzed == 0 {
		strategy.Message = engagement.Message
		strategy.Benchmark = model.Benchmark{
			Rating:      "Unknown",
			Description: "No posts available to benchmark",
		}
		return strategy, nil
	}

	rate := metrics.EngagementRate(float64(engagement.AvgEngagement), engagement.FollowerCount)
	strategy.Benchmark = benchmarkRate(rate)

	summary, err := s.GetAccountSummary(ctx, username)
	if err != nil {
		return nil, err
	}
	content, err := s.GetContentPerformance(ctx, username)
	if err != nil {
		return nil, err
	}

	// Strengths
	strengths := []string{}
	if rate >= 2 {
		strengths = append(strengths, fmt.Sprintf("Strong engagement rate of %.2f%%", rate))
	}
	if content.BestMediaType != "" {
		strengths = append(strengths, fmt.Sprintf("%s content resonates with your audience", content.BestMediaType))
	}
	if summary.Content.RecentPosts7Days >= 3 {
		strengths = append(strengths, "Consistent posting schedule over the last week")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Established posting history to build on")
	}
	strategy.Strengths = strengths

	// Growth opportunities
	opportunities := []string{
		"Experiment with posting times outside your usual pattern",
		"Engage with comments within the first hour of posting",
	}
	if rate < 1 {
		opportunities = append(opportunities, "Engagement is below 1% - try interactive formats like polls and questions")
	}
	strategy.GrowthOpportunities = opportunities

	// Action plan
	strategy.ActionPlan = []model.ActionItem{
		{
			Priority: "High",
			Action:   "Double down on your best content type",
			Detail:   fmt.Sprintf("Your %s posts outperform everything else", bestMediaOrDefault(content.BestMediaType)),
		},
		{
			Priority: "High",
			Action:   "Post at peak hours",
			Detail:   "Schedule posts for the hours your audience engages most",
		},
		{
			Priority: "Medium",
			Action:   "Refresh your hashtag set",
			Detail:   "Keep your proven hashtags and rotate out the weakest performers",
		},
		{
			Priority: "Medium",
			Action:   "Maintain posting cadence",
			Detail:   fmt.Sprintf("You average %.1f posts per month - keep the rhythm steady", summary.Content.PostingFrequency),
		},
	}

	return strategy, nil
}

// benchmarkRate maps a rate percentage onto the standard industry tiers.
func benchmarkRate(rate float64) model.Benchmark {
	switch {
	case rate > 3:
		return model.Benchmark{Rating: "Excellent", Description: "Top-tier engagement (3%+)"}
	case rate > 2:
		return model.Benchmark{Rating: "Good", Description: "Above-average engagement (2-3%)"}
	case rate > 1:
		return model.Benchmark{Rating: "Average", Description: "Typical engagement (1-2%)"}
	default:
		return model.Benchmark{Rating: "Below Average", Description: "Below typical engagement (<1%)"}
	}
}

func bestMediaOrDefault(media string) string {
	if media == "" {
		return "photo"
	}
	return media
}

// =====================================================
// SHARED HELPERS
// =====================================================

// rankByEngagement returns a copy of posts sorted by engagement
// descending. The copy keeps input order for ties.
func rankByEngagement(posts []postModel.Post) []postModel.Post {
	ranked := append([]postModel.Post(nil), posts...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Engagement() > ranked[j].Engagement()
	})
	return ranked
}

// hourBuckets partitions posts into the hours that actually have
// posts, ascending by hour.
func hourBuckets(posts []postModel.Post) []model.HourBucket {
	type agg struct {
		count, engagement int
	}
	var hours [24]agg
	for i := range posts {
		h := posts[i].PostTimestamp.Hour()
		hours[h].count++
		hours[h].engagement += posts[i].Engagement()
	}

	buckets := []model.HourBucket{}
	for h := 0; h < 24; h++ {
		if hours[h].count == 0 {
			continue
		}
		buckets = append(buckets, model.HourBucket{
			Hour:          h,
			PostCount:     hours[h].count,
			AvgEngagement: metrics.Average(hours[h].engagement, hours[h].count),
		})
	}
	return buckets
}
