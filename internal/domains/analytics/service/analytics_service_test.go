package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountModel "social-analytics-backend/internal/domains/account/model"
	"social-analytics-backend/internal/domains/analytics/model"
	postModel "social-analytics-backend/internal/domains/post/model"
	postRepo "social-analytics-backend/internal/domains/post/repository"
)

// =====================================================
// IN-MEMORY FAKES
// =====================================================

type fakeAccountRepo struct {
	accounts map[string]*accountModel.Account
}

func newFakeAccountRepo(accounts ...*accountModel.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{accounts: map[string]*accountModel.Account{}}
	for _, a := range accounts {
		repo.accounts[a.Username] = a
	}
	return repo
}

func (r *fakeAccountRepo) Upsert(_ context.Context, account *accountModel.Account) error {
	r.accounts[account.Username] = account
	return nil
}

func (r *fakeAccountRepo) GetByUsername(_ context.Context, username string) (*accountModel.Account, error) {
	account, ok := r.accounts[username]
	if !ok {
		return nil, accountModel.ErrAccountNotFound
	}
	return account, nil
}

func (r *fakeAccountRepo) List(_ context.Context, limit, offset int) ([]accountModel.Account, error) {
	var out []accountModel.Account
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FollowerCount > out[j].FollowerCount })
	if offset < len(out) {
		out = out[offset:]
	} else {
		out = nil
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAccountRepo) ListUsernames(_ context.Context) ([]string, error) {
	var names []string
	for name := range r.accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *fakeAccountRepo) TopByFollowers(ctx context.Context, n int) ([]accountModel.Account, error) {
	return r.List(ctx, n, 0)
}

func (r *fakeAccountRepo) Count(_ context.Context) (int, error) {
	return len(r.accounts), nil
}

type fakePostRepo struct {
	posts []postModel.Post
}

func (r *fakePostRepo) Upsert(_ context.Context, post *postModel.Post) error {
	r.posts = append(r.posts, *post)
	return nil
}

func (r *fakePostRepo) GetByUsername(_ context.Context, username, sortBy string, limit int) ([]postModel.Post, error) {
	var out []postModel.Post
	for _, p := range r.posts {
		if p.AccountUsername == username {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if sortBy == postRepo.SortByLikes {
			return out[i].LikeCount > out[j].LikeCount
		}
		return out[i].PostTimestamp.After(out[j].PostTimestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePostRepo) GetByUsernameSince(_ context.Context, username string, since time.Time) ([]postModel.Post, error) {
	var out []postModel.Post
	for _, p := range r.posts {
		if p.AccountUsername == username && !p.PostTimestamp.Before(since) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PostTimestamp.Before(out[j].PostTimestamp) })
	return out, nil
}

func (r *fakePostRepo) List(_ context.Context, limit, offset int) ([]postModel.Post, error) {
	return r.posts, nil
}

func (r *fakePostRepo) RecentCollected(_ context.Context, limit int) ([]postModel.Post, error) {
	return r.posts, nil
}

func (r *fakePostRepo) CountAll(_ context.Context) (int, error) {
	return len(r.posts), nil
}

func (r *fakePostRepo) CountByUsername(_ context.Context, username string) (int, error) {
	count := 0
	for _, p := range r.posts {
		if p.AccountUsername == username {
			count++
		}
	}
	return count, nil
}

func (r *fakePostRepo) CountCollectedSince(_ context.Context, since time.Time) (int, error) {
	count := 0
	for _, p := range r.posts {
		if !p.CollectionDate.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *fakePostRepo) TrendingHashtags(_ context.Context, limit int) ([]postModel.TrendingHashtag, error) {
	return nil, nil
}

// =====================================================
// FIXTURES
// =====================================================

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(accounts *fakeAccountRepo, posts *fakePostRepo) *analyticsService {
	return &analyticsService{
		accounts:     accounts,
		posts:        posts,
		dashboardTTL: 5 * time.Minute,
		now:          func() time.Time { return testNow },
	}
}

func alphaAccount() *accountModel.Account {
	return &accountModel.Account{
		Username:      "alpha",
		DisplayName:   "Alpha Creator",
		FollowerCount: 5000,
		PostsCount:    200,
	}
}

// alphaPosts average exactly 1100 engagement over 5000 followers,
// which pins the rate at 22.000.
func alphaPosts() []postModel.Post {
	posts := make([]postModel.Post, 0, 4)
	specs := []struct {
		likes, comments int
		daysAgo         int
		media           string
		tags            []string
	}{
		{1000, 100, 1, postModel.MediaTypeReel, []string{"travel", "sunset"}},
		{900, 200, 3, postModel.MediaTypePhoto, []string{"travel"}},
		{1150, 50, 10, postModel.MediaTypePhoto, []string{"food"}},
		{950, 50, 20, postModel.MediaTypeVideo, []string{"travel", "food"}},
	}
	for i, spec := range specs {
		posts = append(posts, postModel.Post{
			PostID:          fmt.Sprintf("alpha-%d", i),
			AccountUsername: "alpha",
			Caption:         fmt.Sprintf("Alpha post %d", i),
			Hashtags:        spec.tags,
			LikeCount:       spec.likes,
			CommentCount:    spec.comments,
			MediaType:       spec.media,
			PostTimestamp:   testNow.AddDate(0, 0, -spec.daysAgo),
			CollectionDate:  testNow,
		})
	}
	return posts
}

// =====================================================
// ENGAGEMENT
// =====================================================

func TestGetEngagementRate(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: alphaPosts()},
	)

	result, err := svc.GetEngagementRate(context.Background(), "alpha")
	require.NoError(t, err)

	assert.Equal(t, "alpha", result.Username)
	assert.Equal(t, "22.000", result.EngagementRate)
	assert.Equal(t, 1000, result.AvgLikes)
	assert.Equal(t, 100, result.AvgComments)
	assert.Equal(t, 1100, result.AvgEngagement)
	assert.Equal(t, 4, result.PostsAnalyzed)
	assert.Equal(t, 5000, result.FollowerCount)
	assert.Empty(t, result.Message)
}

func TestGetEngagementRateNoPosts(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(&accountModel.Account{Username: "beta", FollowerCount: 100}),
		&fakePostRepo{},
	)

	result, err := svc.GetEngagementRate(context.Background(), "beta")
	require.NoError(t, err)

	assert.Equal(t, "0.000", result.EngagementRate)
	assert.Equal(t, 0, result.PostsAnalyzed)
	assert.Contains(t, result.Message, "No posts found")
}

func TestGetEngagementRateZeroFollowers(t *testing.T) {
	posts := alphaPosts()
	for i := range posts {
		posts[i].AccountUsername = "ghost"
	}
	svc := newTestService(
		newFakeAccountRepo(&accountModel.Account{Username: "ghost", FollowerCount: 0}),
		&fakePostRepo{posts: posts},
	)

	result, err := svc.GetEngagementRate(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, "0.000", result.EngagementRate)
}

func TestGetEngagementRateUnknownAccount(t *testing.T) {
	svc := newTestService(newFakeAccountRepo(), &fakePostRepo{})

	_, err := svc.GetEngagementRate(context.Background(), "nobody")
	require.Error(t, err)

	var analyticsErr *model.AnalyticsError
	require.ErrorAs(t, err, &analyticsErr)
	assert.Equal(t, model.ErrCodeAccountNotFound, analyticsErr.Code)
}

// =====================================================
// SUMMARY
// =====================================================

func TestGetAccountSummary(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: alphaPosts()},
	)

	summary, err := svc.GetAccountSummary(context.Background(), "alpha")
	require.NoError(t, err)

	assert.Equal(t, "Alpha Creator", summary.Account.DisplayName)
	assert.Equal(t, 4, summary.Content.PostsAnalyzed)
	assert.Equal(t, 2, summary.Content.RecentPosts7Days)
	assert.Equal(t, map[string]int{"reel": 1, "photo": 2, "video": 1}, summary.Content.MediaTypes)
	assert.Equal(t, 0.1, summary.Content.PostingFrequency)
	assert.Equal(t, "posts per month", summary.Content.FrequencyUnit)
	assert.Equal(t, []string{"travel", "food", "sunset"}, summary.Content.TopHashtags)
	assert.Equal(t, 1100, summary.Performance.AvgEngagement)
	assert.Equal(t, "22.000", summary.Performance.EngagementRate)

	require.NotNil(t, summary.BestPost)
	assert.Equal(t, 1200, summary.BestPost.Engagement)
}

func TestGetAccountSummaryNoPosts(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(&accountModel.Account{Username: "beta", DisplayName: "Beta"}),
		&fakePostRepo{},
	)

	summary, err := svc.GetAccountSummary(context.Background(), "beta")
	require.NoError(t, err)

	assert.Contains(t, summary.Message, "No posts found")
	assert.Nil(t, summary.BestPost)
	assert.Empty(t, summary.Content.TopHashtags)
}

// =====================================================
// CONTENT PERFORMANCE
// =====================================================

func TestGetContentPerformance(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: alphaPosts()},
	)

	content, err := svc.GetContentPerformance(context.Background(), "alpha")
	require.NoError(t, err)

	assert.Equal(t, 4, content.PostsAnalyzed)
	assert.Len(t, content.MediaBreakdown, 3)

	photo := content.MediaBreakdown["photo"]
	assert.Equal(t, 2, photo.Count)
	assert.Equal(t, 1150, photo.AvgEngagement)
	assert.Equal(t, float64(photo.AvgEngagement), photo.PerformanceScore)

	assert.Equal(t, "photo", content.BestMediaType)
	require.NotEmpty(t, content.TopPosts)
	assert.Equal(t, 1200, content.TopPosts[0].Engagement)
	assert.Len(t, content.Recommendations, 3)
	assert.Equal(t, "content_type", content.Recommendations[0].Type)
}

func TestGetContentPerformanceSingleMediaType(t *testing.T) {
	posts := []postModel.Post{}
	for i := 0; i < 3; i++ {
		posts = append(posts, postModel.Post{
			PostID:          fmt.Sprintf("gamma-%d", i),
			AccountUsername: "gamma",
			LikeCount:       100 * (i + 1),
			MediaType:       postModel.MediaTypePhoto,
			PostTimestamp:   testNow.AddDate(0, 0, -i),
		})
	}
	svc := newTestService(
		newFakeAccountRepo(&accountModel.Account{Username: "gamma", FollowerCount: 1000}),
		&fakePostRepo{posts: posts},
	)

	content, err := svc.GetContentPerformance(context.Background(), "gamma")
	require.NoError(t, err)

	assert.Equal(t, "photo", content.BestMediaType)
	assert.Len(t, content.MediaBreakdown, 1)
}

// =====================================================
// HASHTAGS
// =====================================================

func TestGetHashtagPerformance(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: alphaPosts()},
	)

	hashtags, err := svc.GetHashtagPerformance(context.Background(), "alpha")
	require.NoError(t, err)

	assert.Equal(t, 3, hashtags.UniqueHashtags)
	require.NotEmpty(t, hashtags.TopPerforming)

	// sunset and food tie at 1100 avg, first-seen order breaks the tie
	assert.Equal(t, "sunset", hashtags.TopPerforming[0].Hashtag)
	food := hashtags.TopPerforming[1]
	assert.Equal(t, "food", food.Hashtag)
	assert.Equal(t, 2, food.UsageCount)
	assert.Equal(t, "50.0%", food.UsageFrequency)

	assert.Equal(t, "Use 8-12 hashtags per post for optimal reach", hashtags.Recommendations.Tip)
	assert.Contains(t, hashtags.Recommendations.KeepUsing, "food")
}

func TestGetHashtagPerformanceNoHashtags(t *testing.T) {
	posts := []postModel.Post{{
		PostID:          "plain-1",
		AccountUsername: "plain",
		LikeCount:       10,
		MediaType:       postModel.MediaTypePhoto,
		PostTimestamp:   testNow,
	}}
	svc := newTestService(
		newFakeAccountRepo(&accountModel.Account{Username: "plain"}),
		&fakePostRepo{posts: posts},
	)

	hashtags, err := svc.GetHashtagPerformance(context.Background(), "plain")
	require.NoError(t, err)
	assert.Contains(t, hashtags.Message, "No hashtags found")
}

// =====================================================
// TIMING
// =====================================================

func TestGetTimingAnalysis(t *testing.T) {
	posts := []postModel.Post{
		{PostID: "t1", AccountUsername: "alpha", LikeCount: 100,
			PostTimestamp: time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)}, // Monday 9h
		{PostID: "t2", AccountUsername: "alpha", LikeCount: 500,
			PostTimestamp: time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)}, // Tuesday 18h
		{PostID: "t3", AccountUsername: "alpha", LikeCount: 300,
			PostTimestamp: time.Date(2025, 6, 11, 18, 0, 0, 0, time.UTC)}, // Wednesday 18h
	}
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: posts},
	)

	timing, err := svc.GetTimingAnalysis(context.Background(), "alpha")
	require.NoError(t, err)

	require.NotNil(t, timing.BestHour)
	assert.Equal(t, 18, timing.BestHour.Hour)
	assert.Equal(t, 400, timing.BestHour.AvgEngagement)

	require.NotNil(t, timing.BestDay)
	assert.Equal(t, "Tuesday", timing.BestDay.Day)

	// breakdowns rank strongest slot first
	require.Len(t, timing.HourlyBreakdown, 2)
	assert.Equal(t, 18, timing.HourlyBreakdown[0].Hour)

	require.NotNil(t, timing.DateRange)
	assert.Equal(t, "2025-06-09T09:00:00Z", timing.DateRange.From)
	assert.Contains(t, timing.Recommendation, "18:00")
	assert.Contains(t, timing.Recommendation, "Tuesday")
}

// =====================================================
// GROWTH TREND
// =====================================================

func trendPosts(engagements map[string][]int) []postModel.Post {
	var posts []postModel.Post
	i := 0
	for weekStart, values := range engagements {
		start, _ := time.Parse("2006-01-02", weekStart)
		for d, likes := range values {
			posts = append(posts, postModel.Post{
				PostID:          fmt.Sprintf("w-%d-%d", i, d),
				AccountUsername: "alpha",
				LikeCount:       likes,
				PostTimestamp:   start.AddDate(0, 0, d).Add(10 * time.Hour),
			})
		}
		i++
	}
	return posts
}

func TestGetGrowthTrendGrowing(t *testing.T) {
	// Sundays 2025-05-25 and 2025-06-08: avg engagement 100 -> 200
	posts := trendPosts(map[string][]int{
		"2025-05-25": {100, 100},
		"2025-06-08": {200, 200},
	})
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: posts},
	)

	trend, err := svc.GetGrowthTrend(context.Background(), "alpha", 30)
	require.NoError(t, err)

	assert.Equal(t, 2, trend.WeeksAnalyzed)
	assert.Equal(t, "2025-05-25", trend.WeeklyStats[0].Week)
	assert.Equal(t, model.TrendGrowing, trend.Trend.Direction)
	assert.Equal(t, "100.0", trend.Trend.ChangePercent)
	assert.Equal(t, 2.0, trend.Trend.AvgPostsPerWeek)

	require.NotNil(t, trend.Trend.BestWeek)
	assert.Equal(t, "2025-06-08", trend.Trend.BestWeek.Week)
	assert.Equal(t, "2025-05-25", trend.Trend.WorstWeek.Week)
}

func TestGetGrowthTrendSingleWeekIsNoData(t *testing.T) {
	posts := trendPosts(map[string][]int{"2025-06-08": {100, 200}})
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: posts},
	)

	trend, err := svc.GetGrowthTrend(context.Background(), "alpha", 30)
	require.NoError(t, err)

	assert.Equal(t, 1, trend.WeeksAnalyzed)
	assert.Equal(t, model.TrendNoData, trend.Trend.Direction)
	assert.NotEmpty(t, trend.Message)
}

func TestGetGrowthTrendNoPostsInPeriod(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{},
	)

	trend, err := svc.GetGrowthTrend(context.Background(), "alpha", 30)
	require.NoError(t, err)

	assert.Equal(t, model.TrendNoData, trend.Trend.Direction)
	assert.Equal(t, 0, trend.WeeksAnalyzed)
	assert.Contains(t, trend.Message, "No posts")
}

func TestGetGrowthTrendDecliningAndStable(t *testing.T) {
	decline := trendPosts(map[string][]int{
		"2025-05-25": {1000},
		"2025-06-08": {500},
	})
	svc := newTestService(newFakeAccountRepo(alphaAccount()), &fakePostRepo{posts: decline})
	trend, err := svc.GetGrowthTrend(context.Background(), "alpha", 30)
	require.NoError(t, err)
	assert.Equal(t, model.TrendDeclining, trend.Trend.Direction)

	stable := trendPosts(map[string][]int{
		"2025-05-25": {1000},
		"2025-06-08": {1050},
	})
	svc = newTestService(newFakeAccountRepo(alphaAccount()), &fakePostRepo{posts: stable})
	trend, err = svc.GetGrowthTrend(context.Background(), "alpha", 30)
	require.NoError(t, err)
	assert.Equal(t, model.TrendStable, trend.Trend.Direction)
}

// =====================================================
// STRATEGY
// =====================================================

func TestGetContentStrategy(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: alphaPosts()},
	)

	strategy, err := svc.GetContentStrategy(context.Background(), "alpha")
	require.NoError(t, err)

	// 22% blows past the 3% excellent tier
	assert.Equal(t, "Excellent", strategy.Benchmark.Rating)
	assert.Equal(t, "22.000%", strategy.CurrentPerformance)
	assert.NotEmpty(t, strategy.Strengths)
	assert.Len(t, strategy.ActionPlan, 4)
	assert.Equal(t, "High", strategy.ActionPlan[0].Priority)
}

func TestBenchmarkRateTiers(t *testing.T) {
	assert.Equal(t, "Excellent", benchmarkRate(3.5).Rating)
	assert.Equal(t, "Good", benchmarkRate(2.5).Rating)
	assert.Equal(t, "Average", benchmarkRate(1.5).Rating)
	assert.Equal(t, "Below Average", benchmarkRate(0.5).Rating)
}

// =====================================================
// COMPARISON
// =====================================================

func TestCompareAccountsPartialFailure(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: alphaPosts()},
	)

	comparison, err := svc.CompareAccounts(context.Background(), []string{"alpha", "missing"})
	require.NoError(t, err)

	assert.Equal(t, 2, comparison.AccountsCompared)
	require.Len(t, comparison.Results, 2)

	assert.Equal(t, "alpha", comparison.Results[0].Username)
	assert.Empty(t, comparison.Results[0].Status)

	assert.Equal(t, "missing", comparison.Results[1].Username)
	assert.Equal(t, "failed", comparison.Results[1].Status)
	assert.NotEmpty(t, comparison.Results[1].Error)

	require.NotNil(t, comparison.Rankings)
	assert.Equal(t, []string{"alpha"}, comparison.Rankings.ByEngagementRate)
}

func TestCompareAccountsValidation(t *testing.T) {
	svc := newTestService(newFakeAccountRepo(), &fakePostRepo{})

	_, err := svc.CompareAccounts(context.Background(), []string{"only-one"})
	assert.Error(t, err)

	many := make([]string, 11)
	for i := range many {
		many[i] = fmt.Sprintf("user%d", i)
	}
	_, err = svc.CompareAccounts(context.Background(), many)
	require.Error(t, err)

	var analyticsErr *model.AnalyticsError
	require.ErrorAs(t, err, &analyticsErr)
	assert.Equal(t, model.ErrCodeTooManyAccounts, analyticsErr.Code)
}

func TestCompareAccountsRankingIsNumeric(t *testing.T) {
	// whale has a 3% rate, alpha 22% - string comparison would invert them
	whalePosts := []postModel.Post{{
		PostID:          "whale-1",
		AccountUsername: "whale",
		LikeCount:       300,
		PostTimestamp:   testNow.AddDate(0, 0, -1),
	}}
	svc := newTestService(
		newFakeAccountRepo(alphaAccount(), &accountModel.Account{Username: "whale", FollowerCount: 10000}),
		&fakePostRepo{posts: append(alphaPosts(), whalePosts...)},
	)

	comparison, err := svc.CompareAccounts(context.Background(), []string{"whale", "alpha"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "whale"}, comparison.Rankings.ByEngagementRate)
	assert.Equal(t, []string{"whale", "alpha"}, comparison.Rankings.ByFollowers)
	assert.Equal(t, []string{"alpha", "whale"}, comparison.Rankings.ByTotalPosts)
}

// bulkPosts generates a uniform posting history, one post per hour.
func bulkPosts(username string, n int) []postModel.Post {
	posts := make([]postModel.Post, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, postModel.Post{
			PostID:          fmt.Sprintf("%s-%d", username, i),
			AccountUsername: username,
			LikeCount:       50 + i,
			CommentCount:    5,
			MediaType:       postModel.MediaTypePhoto,
			PostTimestamp:   testNow.Add(-time.Duration(i) * time.Hour),
			CollectionDate:  testNow,
		})
	}
	return posts
}

func TestCompareAccountsRanksByFullHistory(t *testing.T) {
	// both histories exceed the 20-post rate window, so ranking on the
	// windowed count would tie them in request order
	posts := append(bulkPosts("big", 30), bulkPosts("small", 21)...)
	svc := newTestService(
		newFakeAccountRepo(
			&accountModel.Account{Username: "big", FollowerCount: 1000},
			&accountModel.Account{Username: "small", FollowerCount: 1000},
		),
		&fakePostRepo{posts: posts},
	)

	comparison, err := svc.CompareAccounts(context.Background(), []string{"small", "big"})
	require.NoError(t, err)

	require.Len(t, comparison.Results, 2)
	assert.Equal(t, 20, comparison.Results[0].PostsAnalyzed)
	assert.Equal(t, 21, comparison.Results[0].TotalPosts)
	assert.Equal(t, 20, comparison.Results[1].PostsAnalyzed)
	assert.Equal(t, 30, comparison.Results[1].TotalPosts)

	require.NotNil(t, comparison.Rankings)
	assert.Equal(t, []string{"big", "small"}, comparison.Rankings.ByTotalPosts)
}

// =====================================================
// BATCH
// =====================================================

func TestBatchAnalyticsDefaults(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: alphaPosts()},
	)

	batch, err := svc.BatchAnalytics(context.Background(), []string{"alpha"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"engagement", "summary"}, batch.MetricsRequested)
	result := batch.Results["alpha"]
	require.NotNil(t, result)
	assert.NotNil(t, result.Engagement)
	assert.NotNil(t, result.Summary)
	assert.Nil(t, result.Content)
	assert.Empty(t, result.Errors)
}

func TestBatchAnalyticsSkipsUnknownMetrics(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: alphaPosts()},
	)

	batch, err := svc.BatchAnalytics(context.Background(), []string{"alpha"}, []string{"bogus", "engagement"})
	require.NoError(t, err)

	result := batch.Results["alpha"]
	require.NotNil(t, result)
	assert.NotNil(t, result.Engagement)
	assert.Nil(t, result.Summary)
	assert.Empty(t, result.Errors, "unknown tags are ignored, not recorded as failures")
}

func TestBatchAnalyticsIsolatesAccountFailures(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: alphaPosts()},
	)

	batch, err := svc.BatchAnalytics(context.Background(), []string{"alpha", "missing"}, []string{"engagement"})
	require.NoError(t, err)

	assert.NotNil(t, batch.Results["alpha"].Engagement)
	assert.Contains(t, batch.Results["missing"].Errors, "engagement")
}

// =====================================================
// DASHBOARD
// =====================================================

func TestGetDashboard(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: alphaPosts()},
	)

	dashboard, err := svc.GetDashboard(context.Background(), "alpha")
	require.NoError(t, err)

	assert.Equal(t, "alpha", dashboard.Username)
	assert.Equal(t, "22.000", dashboard.QuickStats.EngagementRate)
	assert.Equal(t, "Alpha Creator", dashboard.AccountOverview.DisplayName)
	assert.Equal(t, "photo", dashboard.Insights.BestMediaType)

	// timing insights: all fixture posts land at 12:00, and Thursday
	// carries the strongest average engagement
	assert.Equal(t, 12, dashboard.Insights.BestPostingHour)
	assert.Equal(t, "Thursday", dashboard.Insights.OptimalPostingDay)

	// 22% rate, 2 recent posts, 3 unique hashtags
	assert.Equal(t, "excellent", dashboard.Indicators.EngagementTrend)
	assert.Equal(t, "medium", dashboard.Indicators.ContentConsistency)
	assert.Equal(t, "medium", dashboard.Indicators.HashtagEffectiveness)
}

func TestGetDashboardFailsWhole(t *testing.T) {
	svc := newTestService(newFakeAccountRepo(), &fakePostRepo{})

	_, err := svc.GetDashboard(context.Background(), "missing")
	assert.Error(t, err)
}

// =====================================================
// HEALTH + DISCOVERY
// =====================================================

func TestHealthCheck(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(alphaAccount()),
		&fakePostRepo{posts: alphaPosts()},
	)

	report, err := svc.HealthCheck(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ready", report.Status)
	assert.Equal(t, 1, report.AccountsTracked)
	assert.Equal(t, 4, report.PostsStored)
	require.NotNil(t, report.SampleAccount)
	assert.Equal(t, "alpha", report.SampleAccount.Username)
	assert.Contains(t, report.AvailableAnalytics, "dashboard")
}

func TestHealthCheckWaiting(t *testing.T) {
	svc := newTestService(newFakeAccountRepo(), &fakePostRepo{})

	report, err := svc.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Waiting for data", report.Status)
}

func TestGetAvailableAccounts(t *testing.T) {
	svc := newTestService(
		newFakeAccountRepo(
			alphaAccount(),
			&accountModel.Account{Username: "beta", FollowerCount: 50},
		),
		&fakePostRepo{posts: alphaPosts()},
	)

	accounts, err := svc.GetAvailableAccounts(context.Background())
	require.NoError(t, err)

	require.Len(t, accounts, 2)
	assert.Equal(t, "alpha", accounts[0].Username)
	assert.Equal(t, 4, accounts[0].PostsTracked)
	assert.Equal(t, 0, accounts[1].PostsTracked)
}

func TestGetAvailableAccountsCapsAtTopTwenty(t *testing.T) {
	repo := newFakeAccountRepo()
	for i := 0; i < 25; i++ {
		username := fmt.Sprintf("acct%02d", i)
		repo.accounts[username] = &accountModel.Account{
			Username:      username,
			FollowerCount: 100 + i,
		}
	}
	svc := newTestService(repo, &fakePostRepo{})

	accounts, err := svc.GetAvailableAccounts(context.Background())
	require.NoError(t, err)

	require.Len(t, accounts, 20)
	assert.Equal(t, "acct24", accounts[0].Username, "richest account first")
}
