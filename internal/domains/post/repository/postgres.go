package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"social-analytics-backend/internal/domains/post/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

const postColumns = `
	post_id, account_username, caption, hashtags,
	like_count, comment_count, media_type, media_url,
	post_timestamp, post_url, collection_date
`

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
		&post.PostID,
		&post.AccountUsername,
		&post.Caption,
		(*pq.StringArray)(&post.Hashtags),
		&post.LikeCount,
		&post.CommentCount,
		&post.MediaType,
		&post.MediaURL,
		&post.PostTimestamp,
		&post.PostURL,
		&post.CollectionDate,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Upsert inserts or updates a post keyed on the platform post ID.
// Re-collection refreshes counts without duplicating rows.
func (r *postgresPostRepository) Upsert(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (
			post_id, account_username, caption, hashtags,
			like_count, comment_count, media_type, media_url,
			post_timestamp, post_url, collection_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (post_id) DO UPDATE SET
			caption         = EXCLUDED.caption,
			hashtags        = EXCLUDED.hashtags,
			like_count      = EXCLUDED.like_count,
			comment_count   = EXCLUDED.comment_count,
			media_type      = EXCLUDED.media_type,
			media_url       = EXCLUDED.media_url,
			post_url        = EXCLUDED.post_url,
			collection_date = EXCLUDED.collection_date
	`

	_, err := r.pool.Exec(ctx, query,
		post.PostID,
		post.AccountUsername,
		post.Caption,
		pq.StringArray(post.Hashtags),
		post.LikeCount,
		post.CommentCount,
		post.MediaType,
		post.MediaURL,
		post.PostTimestamp,
		post.PostURL,
		post.CollectionDate,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert post: %w", err)
	}

	return nil
}

func (r *postgresPostRepository) GetByUsername(ctx context.Context, username, sortBy string, limit int) ([]model.Post, error) {
	// Whitelist sort columns, never interpolate caller input.
	switch sortBy {
	case SortByTimestamp, SortByLikes:
	case "":
		sortBy = SortByTimestamp
	default:
		return nil, model.ErrInvalidSort
	}

	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE account_username = $1
		ORDER BY ` + sortBy + ` DESC
	`
	args := []interface{}{username}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *postgresPostRepository) GetByUsernameSince(ctx context.Context, username string, since time.Time) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE account_username = $1 AND post_timestamp >= $2
		ORDER BY post_timestamp ASC
	`

	rows, err := r.pool.Query(ctx, query, username, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts since cutoff: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *postgresPostRepository) List(ctx context.Context, limit, offset int) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		ORDER BY post_timestamp DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *postgresPostRepository) RecentCollected(ctx context.Context, limit int) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		ORDER BY collection_date DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *postgresPostRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

func (r *postgresPostRepository) CountByUsername(ctx context.Context, username string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM posts WHERE account_username = $1`, username,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count account posts: %w", err)
	}
	return count, nil
}

func (r *postgresPostRepository) CountCollectedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM posts WHERE collection_date >= $1`, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent posts: %w", err)
	}
	return count, nil
}

// TrendingHashtags unnests the hashtags array and aggregates usage
// across every tracked account, busiest tags first.
func (r *postgresPostRepository) TrendingHashtags(ctx context.Context, limit int) ([]model.TrendingHashtag, error) {
	query := `
		SELECT
			tag AS hashtag,
			COUNT(*) AS post_count,
			COALESCE(SUM(like_count), 0) AS total_likes,
			COALESCE(SUM(comment_count), 0) AS total_comments,
			COALESCE(ROUND(AVG(like_count + comment_count)), 0)::int AS avg_engagement
		FROM posts, unnest(hashtags) AS tag
		GROUP BY tag
		ORDER BY post_count DESC, total_likes DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate hashtags: %w", err)
	}
	defer rows.Close()

	var tags []model.TrendingHashtag
	for rows.Next() {
		var t model.TrendingHashtag
		if err := rows.Scan(&t.Hashtag, &t.PostCount, &t.TotalLikes, &t.TotalComments, &t.AvgEngagement); err != nil {
			return nil, fmt.Errorf("failed to scan hashtag row: %w", err)
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}

func collectPosts(rows pgx.Rows) ([]model.Post, error) {
	var posts []model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}
