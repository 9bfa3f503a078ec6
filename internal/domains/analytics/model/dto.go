package model

// =====================================================
// ANALYTICS VIEW MODELS
// =====================================================
// Shapes returned by the analytics endpoints. Field names follow the
// public API contract, so renaming any json tag is a breaking change.

// EngagementResult is the headline engagement-rate view. Rate is a
// percentage formatted with 3 decimals, computed over the most recent
// posts window only.
type EngagementResult struct {
	Username       string `json:"username"`
	EngagementRate string `json:"engagement_rate"`
	AvgLikes       int    `json:"avg_likes_per_post"`
	AvgComments    int    `json:"avg_comments_per_post"`
	AvgEngagement  int    `json:"avg_engagement_per_post"`
	PostsAnalyzed  int    `json:"posts_analyzed"`
	FollowerCount  int    `json:"follower_count"`
	Message        string `json:"message,omitempty"`
}

// AccountInfo is the account header embedded in summary views.
type AccountInfo struct {
	Username      string `json:"username"`
	DisplayName   string `json:"display_name"`
	FollowerCount int    `json:"follower_count"`
	Following     int    `json:"following"`
	TotalPosts    int    `json:"total_posts"`
	Verified      bool   `json:"verified"`
}

// ContentStats summarizes what the account publishes.
type ContentStats struct {
	PostsAnalyzed       int            `json:"posts_analyzed"`
	RecentPosts7Days    int            `json:"recent_posts_7_days"`
	MediaTypes          map[string]int `json:"media_types"`
	PostingFrequency    float64        `json:"posting_frequency"`
	FrequencyUnit       string         `json:"frequency_unit"`
	TopHashtags         []string       `json:"top_hashtags"`
	AvgHashtagsPerPost  float64        `json:"avg_hashtags_per_post"`
}

// PerformanceStats summarizes how the content performs.
type PerformanceStats struct {
	AvgLikes       int    `json:"avg_likes"`
	AvgComments    int    `json:"avg_comments"`
	AvgEngagement  int    `json:"avg_engagement"`
	EngagementRate string `json:"engagement_rate"`
}

// BestPost is the single strongest post in the analyzed window.
type BestPost struct {
	Caption    string `json:"caption"`
	Likes      int    `json:"likes"`
	Comments   int    `json:"comments"`
	Engagement int    `json:"engagement"`
	MediaType  string `json:"media_type"`
	PostedAt   string `json:"posted_at"`
}

// AccountSummary is the combined profile + content + performance view.
type AccountSummary struct {
	Account     AccountInfo      `json:"account"`
	Content     ContentStats     `json:"content"`
	Performance PerformanceStats `json:"performance"`
	BestPost    *BestPost        `json:"best_post"`
	GeneratedAt string           `json:"generated_at"`
	Message     string           `json:"message,omitempty"`
}

// MediaTypeStats aggregates performance for one media type.
type MediaTypeStats struct {
	Count            int     `json:"count"`
	AvgLikes         int     `json:"avg_likes"`
	AvgComments      int     `json:"avg_comments"`
	AvgEngagement    int     `json:"avg_engagement"`
	TotalEngagement  int     `json:"total_engagement"`
	PerformanceScore float64 `json:"performance_score"`
}

// PostHighlight is a compact top-post entry in the content report.
type PostHighlight struct {
	Caption    string `json:"caption"`
	MediaType  string `json:"media_type"`
	Likes      int    `json:"likes"`
	Comments   int    `json:"comments"`
	Engagement int    `json:"engagement"`
	PostedAt   string `json:"posted_at"`
}

// HourBucket is one posting-hour partition with its average engagement.
type HourBucket struct {
	Hour          int `json:"hour"`
	PostCount     int `json:"post_count"`
	AvgEngagement int `json:"avg_engagement"`
}

// PostingInsights captures when the account posts and when it should.
type PostingInsights struct {
	BestHour      *HourBucket  `json:"best_hour"`
	HourlyPattern []HourBucket `json:"hourly_pattern"`
}

// Recommendation is one actionable suggestion in a report.
type Recommendation struct {
	Type       string `json:"type"`
	Suggestion string `json:"suggestion"`
}

// ContentPerformance is the per-media-type deep-dive view.
type ContentPerformance struct {
	Username        string                    `json:"username"`
	PostsAnalyzed   int                       `json:"posts_analyzed"`
	MediaBreakdown  map[string]MediaTypeStats `json:"media_breakdown"`
	BestMediaType   string                    `json:"best_media_type"`
	TopPosts        []PostHighlight           `json:"top_posts"`
	PostingInsights PostingInsights           `json:"posting_insights"`
	Recommendations []Recommendation          `json:"recommendations"`
	Message         string                    `json:"message,omitempty"`
}

// HashtagStats aggregates one hashtag's usage and returns.
type HashtagStats struct {
	Hashtag        string `json:"hashtag"`
	UsageCount     int    `json:"usage_count"`
	AvgLikes       int    `json:"avg_likes"`
	AvgComments    int    `json:"avg_comments"`
	AvgEngagement  int    `json:"avg_engagement"`
	UsageFrequency string `json:"usage_frequency"`
}

// HashtagRecommendations tells the account what to keep and drop.
type HashtagRecommendations struct {
	KeepUsing    []string `json:"keep_using"`
	ConsiderDrop []string `json:"consider_dropping"`
	Tip          string   `json:"optimal_count_tip"`
}

// HashtagPerformance ranks every hashtag the account has used.
type HashtagPerformance struct {
	Username        string                 `json:"username"`
	PostsAnalyzed   int                    `json:"posts_analyzed"`
	UniqueHashtags  int                    `json:"unique_hashtags"`
	TopPerforming   []HashtagStats         `json:"top_performing"`
	WorstPerforming []HashtagStats         `json:"worst_performing"`
	Recommendations HashtagRecommendations `json:"recommendations"`
	Message         string                 `json:"message,omitempty"`
}

// HourStats is one hour-of-day partition in the timing view.
type HourStats struct {
	Hour          int `json:"hour"`
	PostCount     int `json:"post_count"`
	AvgLikes      int `json:"avg_likes"`
	AvgEngagement int `json:"avg_engagement"`
}

// DayStats is one day-of-week partition in the timing view.
type DayStats struct {
	Day           string `json:"day"`
	PostCount     int    `json:"post_count"`
	AvgLikes      int    `json:"avg_likes"`
	AvgEngagement int    `json:"avg_engagement"`
}

// DateRange bounds the posts the timing view analyzed.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TimingAnalysis reports when the account's audience engages most.
type TimingAnalysis struct {
	Username       string      `json:"username"`
	PostsAnalyzed  int         `json:"posts_analyzed"`
	DateRange      *DateRange  `json:"date_range"`
	BestHour       *HourStats  `json:"best_hour"`
	BestDay        *DayStats   `json:"best_day"`
	HourlyBreakdown []HourStats `json:"hourly_breakdown"`
	DailyBreakdown  []DayStats  `json:"daily_breakdown"`
	Recommendation  string      `json:"recommendation"`
	Message         string      `json:"message,omitempty"`
}

// WeekStats aggregates one calendar week of posting activity. The
// Week field is the ISO date of the Sunday starting the week.
type WeekStats struct {
	Week          string `json:"week"`
	PostCount     int    `json:"post_count"`
	TotalLikes    int    `json:"total_likes"`
	TotalComments int    `json:"total_comments"`
	AvgEngagement int    `json:"avg_engagement"`
}

// Trend directions
const (
	TrendGrowing   = "growing"
	TrendDeclining = "declining"
	TrendStable    = "stable"
	TrendNoData    = "no_data"
)

// TrendSummary condenses the week series into a direction and extremes.
type TrendSummary struct {
	Direction       string     `json:"direction"`
	ChangePercent   string     `json:"change_percent"`
	BestWeek        *WeekStats `json:"best_week"`
	WorstWeek       *WeekStats `json:"worst_week"`
	AvgPostsPerWeek float64    `json:"avg_posts_per_week"`
}

// GrowthTrend is the week-over-week engagement trajectory view.
type GrowthTrend struct {
	Username      string       `json:"username"`
	PeriodDays    int          `json:"period_days"`
	WeeksAnalyzed int          `json:"weeks_analyzed"`
	WeeklyStats   []WeekStats  `json:"weekly_stats"`
	Trend         TrendSummary `json:"trend"`
	Message       string       `json:"message,omitempty"`
}

// ActionItem is one entry of the strategy action plan.
type ActionItem struct {
	Priority string `json:"priority"`
	Action   string `json:"action"`
	Detail   string `json:"detail"`
}

// Benchmark compares the account's rate against industry tiers.
type Benchmark struct {
	Rating      string `json:"rating"`
	Description string `json:"description"`
}

// ContentStrategy is the full strategic-advice view built on top of
// the summary, content and hashtag reports.
type ContentStrategy struct {
	Username            string       `json:"username"`
	CurrentPerformance  string       `json:"current_performance"`
	Benchmark           Benchmark    `json:"benchmark"`
	Strengths           []string     `json:"strengths"`
	GrowthOpportunities []string     `json:"growth_opportunities"`
	ActionPlan          []ActionItem `json:"action_plan"`
	GeneratedAt         string       `json:"generated_at"`
	Message             string       `json:"message,omitempty"`
}

// ComparisonEntry is one account's line in a comparison. A failed
// account keeps its slot with Status "failed" and the error message.
type ComparisonEntry struct {
	Username       string `json:"username"`
	Status         string `json:"status,omitempty"`
	Error          string `json:"error,omitempty"`
	FollowerCount  int    `json:"follower_count,omitempty"`
	EngagementRate string `json:"engagement_rate,omitempty"`
	AvgEngagement  int    `json:"avg_engagement,omitempty"`
	PostsAnalyzed  int    `json:"posts_analyzed,omitempty"`
	TotalPosts     int    `json:"total_posts,omitempty"`
	Verified       bool   `json:"verified,omitempty"`
}

// Rankings orders the successfully compared accounts three ways.
type Rankings struct {
	ByEngagementRate []string `json:"by_engagement_rate"`
	ByFollowers      []string `json:"by_followers"`
	ByTotalPosts     []string `json:"by_total_posts"`
}

// AccountComparison is the multi-account side-by-side view.
type AccountComparison struct {
	AccountsCompared int               `json:"accounts_compared"`
	Results          []ComparisonEntry `json:"results"`
	Rankings         *Rankings         `json:"rankings"`
	GeneratedAt      string            `json:"generated_at"`
}

// Batch metric identifiers
const (
	MetricEngagement = "engagement"
	MetricSummary    = "summary"
	MetricContent    = "content"
	MetricHashtags   = "hashtags"
	MetricTiming     = "timing"
)

// AccountBatchResult holds one account's slice of a batch run. Each
// requested metric lands in its own field; a metric that failed for
// this account is recorded in Errors instead.
type AccountBatchResult struct {
	Engagement *EngagementResult   `json:"engagement,omitempty"`
	Summary    *AccountSummary     `json:"summary,omitempty"`
	Content    *ContentPerformance `json:"content,omitempty"`
	Hashtags   *HashtagPerformance `json:"hashtags,omitempty"`
	Timing     *TimingAnalysis     `json:"timing,omitempty"`
	Errors     map[string]string   `json:"errors,omitempty"`
}

// BatchResult is the full batch response keyed by username.
type BatchResult struct {
	AccountsProcessed int                            `json:"accounts_processed"`
	MetricsRequested  []string                       `json:"metrics_requested"`
	Results           map[string]*AccountBatchResult `json:"results"`
	GeneratedAt       string                         `json:"generated_at"`
}

// QuickStats are the dashboard's headline numbers.
type QuickStats struct {
	EngagementRate   string  `json:"engagement_rate"`
	AvgLikes         int     `json:"avg_likes"`
	AvgComments      int     `json:"avg_comments"`
	PostingFrequency float64 `json:"posting_frequency"`
}

// PerformanceIndicators grade the account on three axes.
type PerformanceIndicators struct {
	EngagementTrend      string `json:"engagement_trend"`
	ContentConsistency   string `json:"content_consistency"`
	HashtagEffectiveness string `json:"hashtag_effectiveness"`
}

// DashboardInsights surfaces the most useful findings in one place.
type DashboardInsights struct {
	BestPostingHour   interface{} `json:"best_posting_hour"`
	OptimalPostingDay string      `json:"optimal_posting_day"`
	TopHashtags       []string    `json:"top_hashtags"`
	BestMediaType     string      `json:"best_media_type"`
}

// Dashboard is the consolidated single-account view. It composes five
// reports and fails as a whole if any of them fails.
type Dashboard struct {
	Username        string                `json:"username"`
	AccountOverview AccountInfo           `json:"account_overview"`
	QuickStats      QuickStats            `json:"quick_stats"`
	Insights        DashboardInsights     `json:"insights"`
	Indicators      PerformanceIndicators `json:"performance_indicators"`
	GeneratedAt     string                `json:"generated_at"`
}

// AvailableAccount is one row of the analytics discovery endpoint.
type AvailableAccount struct {
	Username      string `json:"username"`
	DisplayName   string `json:"display_name"`
	FollowerCount int    `json:"follower_count"`
	PostsTracked  int    `json:"posts_tracked"`
}

// HealthSample shows the richest tracked account in the health view.
type HealthSample struct {
	Username      string `json:"username"`
	FollowerCount int    `json:"follower_count"`
	PostsTracked  int    `json:"posts_tracked"`
}

// HealthReport is the analytics service self-check.
type HealthReport struct {
	Status             string        `json:"status"`
	AccountsTracked    int           `json:"accounts_tracked"`
	PostsStored        int           `json:"posts_stored"`
	PostsLast24h       int           `json:"posts_collected_24h"`
	SampleAccount      *HealthSample `json:"sample_account"`
	AvailableAnalytics []string      `json:"available_analytics"`
	CheckedAt          string        `json:"checked_at"`
}
