package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	accountModel "social-analytics-backend/internal/domains/account/model"
	accountRepo "social-analytics-backend/internal/domains/account/repository"
	"social-analytics-backend/internal/domains/collection/model"
	"social-analytics-backend/internal/domains/collection/scraper"
	postModel "social-analytics-backend/internal/domains/post/model"
	postRepo "social-analytics-backend/internal/domains/post/repository"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// COLLECTION SERVICE
// =====================================================

const postsPerRun = 30

var hashtagPattern = regexp.MustCompile(`#\w+`)

// CollectionService pulls fresh data from the provider and persists it.
type CollectionService interface {
	// ScrapeAccount collects one account, falling back to generated
	// data when the live provider is unavailable.
	ScrapeAccount(ctx context.Context, username string) (*model.CollectionResult, error)

	// CollectAll sweeps every tracked account. Per-account failures
	// are recorded, not fatal.
	CollectAll(ctx context.Context) (*model.CollectionStats, error)

	// Status reports how fresh the stored data is.
	Status(ctx context.Context) (*model.CollectionStatus, error)
}

type collectionService struct {
	live     *scraper.Client
	mock     scraper.Scraper
	accounts accountRepo.AccountRepository
	posts    postRepo.PostRepository

	now func() time.Time
}

func NewCollectionService(
	live *scraper.Client,
	mock scraper.Scraper,
	accounts accountRepo.AccountRepository,
	posts postRepo.PostRepository,
) CollectionService {
	return &collectionService{
		live:     live,
		mock:     mock,
		accounts: accounts,
		posts:    posts,
		now:      time.Now,
	}
}

// ScrapeAccount fetches the account's latest posts and upserts the
// account record plus every post.
func (s *collectionService) ScrapeAccount(ctx context.Context, username string) (*model.CollectionResult, error) {
	username = accountModel.NormalizeUsername(username)
	started := s.now()

	logger.Info("🔥 [COLLECT] Starting collection", map[string]interface{}{
		"username": username,
	})

	// Step 1: fetch, live first then mock fallback
	raw, source, err := s.fetch(ctx, username)
	if err != nil {
		return nil, model.NewScrapeFailedError(username, err)
	}

	// Step 2: persist account from the owner fields of the first post
	account := accountFromRaw(username, raw, s.now())
	if err := s.accounts.Upsert(ctx, account); err != nil {
		return nil, model.NewScrapeFailedError(username, err)
	}

	// Step 3: persist posts
	saved := 0
	for i := range raw {
		post := normalizePost(username, &raw[i], s.now())
		if post.PostID == "" {
			continue
		}
		if err := s.posts.Upsert(ctx, post); err != nil {
			logger.Warn("⚠️ [COLLECT] Failed to save post", err)
			continue
		}
		saved++
	}

	result := &model.CollectionResult{
		Username:       username,
		PostsCollected: saved,
		Source:         source,
		DurationMS:     s.now().Sub(started).Milliseconds(),
		FollowerCount:  account.FollowerCount,
	}

	logger.Info("✅ [COLLECT] Collection finished", map[string]interface{}{
		"username":        username,
		"posts_collected": saved,
		"source":          source,
		"duration_ms":     result.DurationMS,
	})

	return result, nil
}

// fetch tries the live provider and falls back to the mock scraper.
// The fallback keeps development and demo environments alive when
// the provider blocks or no token is configured.
func (s *collectionService) fetch(ctx context.Context, username string) ([]model.RawPost, string, error) {
	if s.live != nil && s.live.HasToken() {
		raw, err := s.live.FetchPosts(ctx, username, postsPerRun)
		if err == nil {
			return raw, model.SourceLive, nil
		}
		logger.Warn("⚠️ [COLLECT] Live provider failed, falling back to mock", err)
	}

	raw, err := s.mock.FetchPosts(ctx, username, postsPerRun)
	if err != nil {
		return nil, "", err
	}
	return raw, model.SourceMock, nil
}

func (s *collectionService) CollectAll(ctx context.Context) (*model.CollectionStats, error) {
	started := s.now()

	usernames, err := s.accounts.ListUsernames(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("🚀 [COLLECT] Sweep started", map[string]interface{}{
		"accounts": len(usernames),
	})

	stats := &model.CollectionStats{}
	for _, username := range usernames {
		result, err := s.ScrapeAccount(ctx, username)
		if err != nil {
			stats.AccountsFailed++
			stats.Failures = append(stats.Failures, model.AccountFailure{
				Username: username,
				Error:    err.Error(),
			})
			continue
		}
		stats.AccountsProcessed++
		stats.PostsCollected += result.PostsCollected
	}
	stats.DurationMS = s.now().Sub(started).Milliseconds()

	logger.Info("🏁 [COLLECT] Sweep finished", map[string]interface{}{
		"processed":   stats.AccountsProcessed,
		"failed":      stats.AccountsFailed,
		"posts":       stats.PostsCollected,
		"duration_ms": stats.DurationMS,
	})

	return stats, nil
}

func (s *collectionService) Status(ctx context.Context) (*model.CollectionStatus, error) {
	accounts, err := s.accounts.Count(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.posts.CountCollectedSince(ctx, s.now().Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}

	return &model.CollectionStatus{
		AccountsTracked: accounts,
		PostsStored:     posts,
		PostsLast24h:    recent,
		CheckedAt:       s.now().UTC().Format(time.RFC3339),
	}, nil
}

// =====================================================
// NORMALIZATION
// =====================================================

// accountFromRaw builds the account record from the owner fields the
// provider attaches to every post.
func accountFromRaw(username string, raw []model.RawPost, now time.Time) *accountModel.Account {
	account := &accountModel.Account{
		Username:       username,
		DisplayName:    username,
		AccountType:    accountModel.AccountTypePersonal,
		CollectionDate: now,
		LastUpdated:    now,
	}

	for i := range raw {
		if raw[i].OwnerUsername == "" && raw[i].OwnerFollowersCount == 0 {
			continue
		}
		if raw[i].OwnerFullName != "" {
			account.DisplayName = raw[i].OwnerFullName
		}
		account.Biography = raw[i].OwnerBiography
		account.ProfilePicURL = raw[i].OwnerProfilePicURL
		account.FollowerCount = raw[i].OwnerFollowersCount
		account.FollowingCount = raw[i].OwnerFollowsCount
		account.PostsCount = raw[i].OwnerPostsCount
		account.VerificationStatus = raw[i].OwnerVerified
		break
	}

	return account
}

// normalizePost maps a provider dataset item onto the storage schema.
func normalizePost(username string, raw *model.RawPost, now time.Time) *postModel.Post {
	id := raw.ID
	if id == "" {
		id = raw.ShortCode
	}

	mediaURL := raw.DisplayURL
	if raw.VideoURL != "" {
		mediaURL = raw.VideoURL
	}

	return &postModel.Post{
		PostID:          id,
		AccountUsername: username,
		Caption:         raw.Caption,
		Hashtags:        ExtractHashtags(raw.Caption),
		LikeCount:       raw.LikesCount,
		CommentCount:    raw.CommentsCount,
		MediaType:       mapMediaType(raw),
		MediaURL:        mediaURL,
		PostTimestamp:   raw.Timestamp,
		PostURL:         raw.URL,
		CollectionDate:  now,
	}
}

// ExtractHashtags pulls lowercase hashtags out of a caption, without
// the leading '#'.
func ExtractHashtags(caption string) []string {
	matches := hashtagPattern.FindAllString(caption, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.ToLower(strings.TrimPrefix(m, "#")))
	}
	return tags
}

// mapMediaType collapses the provider's type vocabulary onto ours.
// A video URL marks the item as a plain video even when the provider
// types it GraphVideo, so the video check runs first.
func mapMediaType(raw *model.RawPost) string {
	switch {
	case raw.VideoURL != "" || raw.Type == "Video":
		return postModel.MediaTypeVideo
	case raw.Type == "Sidecar" || len(raw.ChildPosts) > 1:
		return postModel.MediaTypeCarousel
	case raw.Type == "GraphVideo":
		return postModel.MediaTypeReel
	default:
		return postModel.MediaTypePhoto
	}
}
