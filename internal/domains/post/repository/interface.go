package repository

import (
	"context"
	"time"

	"social-analytics-backend/internal/domains/post/model"
)

// Sortable fields for post listings. Anything else is rejected with
// model.ErrInvalidSort before reaching the database.
const (
	SortByTimestamp = "post_timestamp"
	SortByLikes     = "like_count"
)

// PostRepository is the read/write contract over collected posts.
type PostRepository interface {
	// Upsert inserts or updates a post keyed on post_id.
	Upsert(ctx context.Context, post *model.Post) error

	// GetByUsername returns the account's posts ordered by sortBy
	// descending, newest/highest first. limit <= 0 means no limit.
	GetByUsername(ctx context.Context, username, sortBy string, limit int) ([]model.Post, error)

	// GetByUsernameSince returns the account's posts published at or
	// after the cutoff, ordered by post_timestamp ascending.
	GetByUsernameSince(ctx context.Context, username string, since time.Time) ([]model.Post, error)

	// List returns posts across all accounts, newest first.
	List(ctx context.Context, limit, offset int) ([]model.Post, error)

	// RecentCollected returns the latest posts by collection date.
	RecentCollected(ctx context.Context, limit int) ([]model.Post, error)

	// CountAll returns the total number of stored posts.
	CountAll(ctx context.Context) (int, error)

	// CountByUsername returns the number of stored posts for one account.
	CountByUsername(ctx context.Context, username string) (int, error)

	// CountCollectedSince counts posts collected at or after the cutoff.
	CountCollectedSince(ctx context.Context, since time.Time) (int, error)

	// TrendingHashtags aggregates hashtag usage across all accounts.
	TrendingHashtags(ctx context.Context, limit int) ([]model.TrendingHashtag, error)
}
