package model

import "time"

// Data sources a collection run can come from.
const (
	SourceLive = "live"
	SourceMock = "mock"
)

// RawPost is one dataset item as the scraping provider returns it.
// Field names mirror the provider payload, not our storage schema;
// the collection service normalizes them before persisting.
type RawPost struct {
	ID                  string     `json:"id"`
	ShortCode           string     `json:"shortCode"`
	Type                string     `json:"type"`
	Caption             string     `json:"caption"`
	URL                 string     `json:"url"`
	DisplayURL          string     `json:"displayUrl"`
	VideoURL            string     `json:"videoUrl"`
	LikesCount          int        `json:"likesCount"`
	CommentsCount       int        `json:"commentsCount"`
	Timestamp           time.Time  `json:"timestamp"`
	ChildPosts          []struct{} `json:"childPosts"`
	OwnerUsername       string     `json:"ownerUsername"`
	OwnerFullName       string     `json:"ownerFullName"`
	OwnerBiography      string     `json:"biography"`
	OwnerProfilePicURL  string     `json:"profilePicUrl"`
	OwnerFollowersCount int        `json:"ownerFollowersCount"`
	OwnerFollowsCount   int        `json:"ownerFollowsCount"`
	OwnerPostsCount     int        `json:"ownerPostsCount"`
	OwnerVerified       bool       `json:"ownerVerified"`
}

// ScrapeResult is the raw outcome of one provider call.
type ScrapeResult struct {
	Username string
	Posts    []RawPost
	Source   string
}

// CollectionResult summarizes one persisted collection run.
type CollectionResult struct {
	Username       string  `json:"username"`
	PostsCollected int     `json:"posts_collected"`
	Source         string  `json:"source"`
	DurationMS     int64   `json:"duration_ms"`
	FollowerCount  int     `json:"follower_count"`
}

// AccountFailure records one account that failed during a sweep.
type AccountFailure struct {
	Username string `json:"username"`
	Error    string `json:"error"`
}

// CollectionStats summarizes a sweep over every tracked account.
type CollectionStats struct {
	AccountsProcessed int              `json:"accounts_processed"`
	AccountsFailed    int              `json:"accounts_failed"`
	PostsCollected    int              `json:"posts_collected"`
	Failures          []AccountFailure `json:"failures,omitempty"`
	DurationMS        int64            `json:"duration_ms"`
}

// CollectionStatus is the data-freshness view of the collect endpoints.
type CollectionStatus struct {
	AccountsTracked int    `json:"accounts_tracked"`
	PostsStored     int    `json:"posts_stored"`
	PostsLast24h    int    `json:"posts_collected_24h"`
	CheckedAt       string `json:"checked_at"`
}
