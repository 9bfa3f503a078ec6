package service

import (
	"context"
	"fmt"
	"time"

	accountModel "social-analytics-backend/internal/domains/account/model"
	accountRepo "social-analytics-backend/internal/domains/account/repository"
	"social-analytics-backend/internal/domains/analytics/metrics"
	"social-analytics-backend/internal/domains/analytics/model"
	postRepo "social-analytics-backend/internal/domains/post/repository"
	"social-analytics-backend/pkg/cache"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// ANALYTICS SERVICE
// =====================================================

const (
	// engagementWindow bounds the engagement-rate calculation to the
	// most recent posts so stale history does not drag the rate.
	engagementWindow = 20

	topHashtagCount        = 10
	captionPreviewLen      = 100
	topPostPreviewLen      = 80
	topPostCount           = 5
	recentWindowDays       = 7
	defaultPeriodDays      = 30
	maxCompareAccounts     = 10
	availableAccountsLimit = 20
)

type analyticsService struct {
	accounts     accountRepo.AccountRepository
	posts        postRepo.PostRepository
	cache        cache.Cache
	dashboardTTL time.Duration

	// now is injected so report windows are testable.
	now func() time.Time
}

func NewAnalyticsService(
	accounts accountRepo.AccountRepository,
	posts postRepo.PostRepository,
	cacheStore cache.Cache,
	dashboardTTL time.Duration,
) AnalyticsService {
	return &analyticsService{
		accounts:     accounts,
		posts:        posts,
		cache:        cacheStore,
		dashboardTTL: dashboardTTL,
		now:          time.Now,
	}
}

// loadAccount resolves the account or fails with a coded not-found.
func (s *analyticsService) loadAccount(ctx context.Context, username string) (*accountModel.Account, error) {
	username = accountModel.NormalizeUsername(username)
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if err == accountModel.ErrAccountNotFound {
			return nil, model.NewAccountNotFoundError(username)
		}
		return nil, err
	}
	return account, nil
}

func (s *analyticsService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// =====================================================
// ENGAGEMENT RATE
// =====================================================

// GetEngagementRate computes the headline rate over the most recent
// posts window: avg(likes+comments) / followers * 100.
func (s *analyticsService) GetEngagementRate(ctx context.Context, username string) (*model.EngagementResult, error) {
	account, err := s.loadAccount(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.GetByUsername(ctx, account.Username, postRepo.SortByTimestamp, engagementWindow)
	if err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		return &model.EngagementResult{
			Username:       account.Username,
			EngagementRate: metrics.FormatRate(0),
			FollowerCount:  account.FollowerCount,
			Message:        fmt.Sprintf("No posts found for %s", account.Username),
		}, nil
	}

	totalLikes, totalComments := 0, 0
	for i := range posts {
		totalLikes += posts[i].LikeCount
		totalComments += posts[i].CommentCount
	}

	avgEngagement := metrics.Average(totalLikes+totalComments, len(posts))
	rate := metrics.EngagementRate(float64(avgEngagement), account.FollowerCount)

	logger.Debug("📊 [ANALYTICS] Engagement rate computed", map[string]interface{}{
		"username":       account.Username,
		"posts_analyzed": len(posts),
		"rate":           rate,
	})

	return &model.EngagementResult{
		Username:       account.Username,
		EngagementRate: metrics.FormatRate(rate),
		AvgLikes:       metrics.Average(totalLikes, len(posts)),
		AvgComments:    metrics.Average(totalComments, len(posts)),
		AvgEngagement:  avgEngagement,
		PostsAnalyzed:  len(posts),
		FollowerCount:  account.FollowerCount,
	}, nil
}

// =====================================================
// ACCOUNT SUMMARY
// =====================================================

// GetAccountSummary combines the profile header with content habits
// and performance averages over the whole stored history.
func (s *analyticsService) GetAccountSummary(ctx context.Context, username string) (*model.AccountSummary, error) {
	account, err := s.loadAccount(ctx, username)
	if err != nil {
		return nil, err
	}

	summary := &model.AccountSummary{
		Account: model.AccountInfo{
			Username:      account.Username,
			DisplayName:   account.DisplayName,
			FollowerCount: account.FollowerCount,
			Following:     account.FollowingCount,
			TotalPosts:    account.PostsCount,
			Verified:      account.VerificationStatus,
		},
		GeneratedAt: s.timestamp(),
	}

	posts, err := s.posts.GetByUsername(ctx, account.Username, postRepo.SortByTimestamp, 0)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		summary.Content.MediaTypes = map[string]int{}
		summary.Content.TopHashtags = []string{}
		summary.Message = fmt.Sprintf("No posts found for %s", account.Username)
		return summary, nil
	}

	// Step 1: content habits
	weekAgo := s.now().AddDate(0, 0, -recentWindowDays)
	recentCount := 0
	mediaTypes := metrics.NewFrequencyMap()
	hashtags := metrics.NewFrequencyMap()
	totalHashtags := 0

	for i := range posts {
		p := &posts[i]
		if p.PostTimestamp.After(weekAgo) {
			recentCount++
		}
		mediaTypes.Add(p.MediaType)
		for _, tag := range p.Hashtags {
			hashtags.Add(tag)
			totalHashtags++
		}
	}

	summary.Content = model.ContentStats{
		PostsAnalyzed:    len(posts),
		RecentPosts7Days: recentCount,
		MediaTypes:       mediaTypes.Counts(),
		// Stored history approximates one month of activity.
		PostingFrequency:   metrics.RoundTo(float64(len(posts))/float64(defaultPeriodDays), 1),
		FrequencyUnit:      "posts per month",
		TopHashtags:        hashtags.TopN(topHashtagCount),
		AvgHashtagsPerPost: metrics.RoundTo(float64(totalHashtags)/float64(len(posts)), 1),
	}

	// Step 2: performance averages. Best post is the one with the
	// most likes; the first seen wins ties.
	totalLikes, totalComments := 0, 0
	best := &posts[0]
	for i := range posts {
		p := &posts[i]
		totalLikes += p.LikeCount
		totalComments += p.CommentCount
		if p.LikeCount > best.LikeCount {
			best = p
		}
	}

	avgEngagement := metrics.Average(totalLikes+totalComments, len(posts))
	rate := metrics.EngagementRate(float64(avgEngagement), account.FollowerCount)

	summary.Performance = model.PerformanceStats{
		AvgLikes:       metrics.Average(totalLikes, len(posts)),
		AvgComments:    metrics.Average(totalComments, len(posts)),
		AvgEngagement:  avgEngagement,
		EngagementRate: metrics.FormatRate(rate),
	}

	summary.BestPost = &model.BestPost{
		Caption:    metrics.Truncate(best.Caption, captionPreviewLen),
		Likes:      best.LikeCount,
		Comments:   best.CommentCount,
		Engagement: best.Engagement(),
		MediaType:  best.MediaType,
		PostedAt:   best.PostTimestamp.UTC().Format(time.RFC3339),
	}

	return summary, nil
}

// =====================================================
// CONTENT PERFORMANCE
// =====================================================

// GetContentPerformance breaks performance down by media type, ranks
// the strongest posts and derives posting-hour insights.
func (s *analyticsService) GetContentPerformance(ctx context.Context, username string) (*model.ContentPerformance, error) {
	account, err := s.loadAccount(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.GetByUsername(ctx, account.Username, postRepo.SortByTimestamp, 0)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return &model.ContentPerformance{
			Username:        account.Username,
			MediaBreakdown:  map[string]model.MediaTypeStats{},
			TopPosts:        []model.PostHighlight{},
			Recommendations: []model.Recommendation{},
			Message:         fmt.Sprintf("No posts found for %s", account.Username),
		}, nil
	}

	// Step 1: per-media-type aggregation
	type mediaAgg struct {
		count, likes, comments, engagement int
	}
	aggs := map[string]*mediaAgg{}
	mediaOrder := []string{}
	for i := range posts {
		p := &posts[i]
		agg, ok := aggs[p.MediaType]
		if !ok {
			agg = &mediaAgg{}
			aggs[p.MediaType] = agg
			mediaOrder = append(mediaOrder, p.MediaType)
		}
		agg.count++
		agg.likes += p.LikeCount
		agg.comments += p.CommentCount
		agg.engagement += p.Engagement()
	}

	breakdown := make(map[string]model.MediaTypeStats, len(aggs))
	bestMedia := ""
	bestScore := -1.0
	for _, mediaType := range mediaOrder {
		agg := aggs[mediaType]
		avgEng := metrics.Average(agg.engagement, agg.count)
		stats := model.MediaTypeStats{
			Count:            agg.count,
			AvgLikes:         metrics.Average(agg.likes, agg.count),
			AvgComments:      metrics.Average(agg.comments, agg.count),
			AvgEngagement:    avgEng,
			TotalEngagement:  agg.engagement,
			PerformanceScore: float64(avgEng),
		}
		breakdown[mediaType] = stats
		if stats.PerformanceScore > bestScore {
			bestScore = stats.PerformanceScore
			bestMedia = mediaType
		}
	}

	// Step 2: top posts
	ranked := rankByEngagement(posts)
	limit := topPostCount
	if len(ranked) < limit {
		limit = len(ranked)
	}
	topPosts := make([]model.PostHighlight, 0, limit)
	for _, p := range ranked[:limit] {
		topPosts = append(topPosts, model.PostHighlight{
			Caption:    metrics.Truncate(p.Caption, topPostPreviewLen),
			MediaType:  p.MediaType,
			Likes:      p.LikeCount,
			Comments:   p.CommentCount,
			Engagement: p.Engagement(),
			PostedAt:   p.PostTimestamp.UTC().Format(time.RFC3339),
		})
	}

	// Step 3: hourly pattern
	hourly := hourBuckets(posts)
	var bestHour *model.HourBucket
	for i := range hourly {
		if bestHour == nil || hourly[i].AvgEngagement > bestHour.AvgEngagement {
			bestHour = &hourly[i]
		}
	}

	// Step 4: recommendations
	recommendations := []model.Recommendation{}
	if bestMedia != "" {
		recommendations = append(recommendations, model.Recommendation{
			Type:       "content_type",
			Suggestion: fmt.Sprintf("Focus on %s content - it gets your highest engagement", bestMedia),
		})
	}
	if bestHour != nil {
		recommendations = append(recommendations, model.Recommendation{
			Type:       "timing",
			Suggestion: fmt.Sprintf("Post around %d:00 for better reach", bestHour.Hour),
		})
	}
	if len(topPosts) > 0 {
		recommendations = append(recommendations, model.Recommendation{
			Type:       "engagement",
			Suggestion: fmt.Sprintf("Your best post earned %d interactions - study what made it work", topPosts[0].Engagement),
		})
	}

	return &model.ContentPerformance{
		Username:       account.Username,
		PostsAnalyzed:  len(posts),
		MediaBreakdown: breakdown,
		BestMediaType:  bestMedia,
		TopPosts:       topPosts,
		PostingInsights: model.PostingInsights{
			BestHour:      bestHour,
			HourlyPattern: hourly,
		},
		Recommendations: recommendations,
	}, nil
}
