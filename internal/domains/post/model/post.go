package model

import "time"

// Media types
const (
	MediaTypePhoto    = "photo"
	MediaTypeVideo    = "video"
	MediaTypeCarousel = "carousel"
	MediaTypeReel     = "reel"
)

// Post is a single published content item belonging to an account.
// Created and updated by the collection worker via upsert keyed on
// post_id; the analytics layer only reads posts.
type Post struct {
	PostID          string    `json:"post_id"`
	AccountUsername string    `json:"account_username"`
	Caption         string    `json:"caption"`
	Hashtags        []string  `json:"hashtags"`
	LikeCount       int       `json:"like_count"`
	CommentCount    int       `json:"comment_count"`
	MediaType       string    `json:"media_type"`
	MediaURL        string    `json:"media_url"`
	PostTimestamp   time.Time `json:"post_timestamp"`
	PostURL         string    `json:"post_url"`
	CollectionDate  time.Time `json:"collection_date"`
}

// Engagement is the primary interaction signal: likes plus comments.
func (p *Post) Engagement() int {
	return p.LikeCount + p.CommentCount
}

// TrendingHashtag is one row of the store-side hashtag aggregation.
type TrendingHashtag struct {
	Hashtag       string `json:"hashtag"`
	PostCount     int    `json:"post_count"`
	TotalLikes    int    `json:"total_likes"`
	TotalComments int    `json:"total_comments"`
	AvgEngagement int    `json:"avg_engagement"`
}
