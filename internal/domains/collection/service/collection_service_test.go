package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountModel "social-analytics-backend/internal/domains/account/model"
	"social-analytics-backend/internal/domains/collection/model"
	"social-analytics-backend/internal/domains/collection/scraper"
	postModel "social-analytics-backend/internal/domains/post/model"
)

// =====================================================
// FAKES
// =====================================================

type memAccountRepo struct {
	accounts map[string]*accountModel.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: map[string]*accountModel.Account{}}
}

func (r *memAccountRepo) Upsert(_ context.Context, a *accountModel.Account) error {
	r.accounts[a.Username] = a
	return nil
}

func (r *memAccountRepo) GetByUsername(_ context.Context, username string) (*accountModel.Account, error) {
	a, ok := r.accounts[username]
	if !ok {
		return nil, accountModel.ErrAccountNotFound
	}
	return a, nil
}

func (r *memAccountRepo) List(_ context.Context, _, _ int) ([]accountModel.Account, error) {
	return nil, nil
}

func (r *memAccountRepo) ListUsernames(_ context.Context) ([]string, error) {
	var names []string
	for name := range r.accounts {
		names = append(names, name)
	}
	return names, nil
}

func (r *memAccountRepo) TopByFollowers(_ context.Context, _ int) ([]accountModel.Account, error) {
	return nil, nil
}

func (r *memAccountRepo) Count(_ context.Context) (int, error) {
	return len(r.accounts), nil
}

type memPostRepo struct {
	posts map[string]*postModel.Post
	fail  bool
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[string]*postModel.Post{}}
}

func (r *memPostRepo) Upsert(_ context.Context, p *postModel.Post) error {
	if r.fail {
		return errors.New("store unavailable")
	}
	r.posts[p.PostID] = p
	return nil
}

func (r *memPostRepo) GetByUsername(_ context.Context, _, _ string, _ int) ([]postModel.Post, error) {
	return nil, nil
}

func (r *memPostRepo) GetByUsernameSince(_ context.Context, _ string, _ time.Time) ([]postModel.Post, error) {
	return nil, nil
}

func (r *memPostRepo) List(_ context.Context, _, _ int) ([]postModel.Post, error) {
	return nil, nil
}

func (r *memPostRepo) RecentCollected(_ context.Context, _ int) ([]postModel.Post, error) {
	return nil, nil
}

func (r *memPostRepo) CountAll(_ context.Context) (int, error) {
	return len(r.posts), nil
}

func (r *memPostRepo) CountByUsername(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func (r *memPostRepo) CountCollectedSince(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

func (r *memPostRepo) TrendingHashtags(_ context.Context, _ int) ([]postModel.TrendingHashtag, error) {
	return nil, nil
}

type stubScraper struct {
	posts []model.RawPost
	err   error
}

func (s *stubScraper) FetchPosts(_ context.Context, _ string, _ int) ([]model.RawPost, error) {
	return s.posts, s.err
}

// =====================================================
// NORMALIZATION
// =====================================================

func TestExtractHashtags(t *testing.T) {
	tags := ExtractHashtags("Great day! #Fitness #MOTIVATION check #gym_life")
	assert.Equal(t, []string{"fitness", "motivation", "gym_life"}, tags)

	assert.Empty(t, ExtractHashtags("no tags here"))
	assert.Empty(t, ExtractHashtags(""))
}

func TestMapMediaType(t *testing.T) {
	assert.Equal(t, postModel.MediaTypeReel, mapMediaType(&model.RawPost{Type: "GraphVideo"}))
	assert.Equal(t, postModel.MediaTypeVideo, mapMediaType(&model.RawPost{Type: "Video"}))
	assert.Equal(t, postModel.MediaTypeVideo, mapMediaType(&model.RawPost{VideoURL: "https://v"}))
	// a video URL wins over the GraphVideo type
	assert.Equal(t, postModel.MediaTypeVideo, mapMediaType(&model.RawPost{Type: "GraphVideo", VideoURL: "https://v"}))
	assert.Equal(t, postModel.MediaTypeCarousel, mapMediaType(&model.RawPost{Type: "Sidecar"}))
	assert.Equal(t, postModel.MediaTypeCarousel, mapMediaType(&model.RawPost{ChildPosts: []struct{}{{}, {}}}))
	assert.Equal(t, postModel.MediaTypePhoto, mapMediaType(&model.RawPost{Type: "GraphImage"}))
	assert.Equal(t, postModel.MediaTypePhoto, mapMediaType(&model.RawPost{}))
}

func TestNormalizePost(t *testing.T) {
	now := time.Now()
	raw := &model.RawPost{
		ID:            "abc123",
		Type:          "Video",
		Caption:       "Leg day #Fitness",
		URL:           "https://instagram.com/p/abc123",
		VideoURL:      "https://cdn/video.mp4",
		DisplayURL:    "https://cdn/thumb.jpg",
		LikesCount:    500,
		CommentsCount: 25,
		Timestamp:     now.Add(-time.Hour),
	}

	post := normalizePost("athlete", raw, now)

	assert.Equal(t, "abc123", post.PostID)
	assert.Equal(t, "athlete", post.AccountUsername)
	assert.Equal(t, []string{"fitness"}, post.Hashtags)
	assert.Equal(t, postModel.MediaTypeVideo, post.MediaType)
	assert.Equal(t, "https://cdn/video.mp4", post.MediaURL)
	assert.Equal(t, now, post.CollectionDate)
}

func TestNormalizePostFallsBackToShortCode(t *testing.T) {
	post := normalizePost("athlete", &model.RawPost{ShortCode: "SC1"}, time.Now())
	assert.Equal(t, "SC1", post.PostID)
}

// =====================================================
// COLLECTION RUNS
// =====================================================

func rawFixture(username string, count int) []model.RawPost {
	posts := make([]model.RawPost, 0, count)
	for i := 0; i < count; i++ {
		posts = append(posts, model.RawPost{
			ID:                  string(rune('a'+i)) + "-post",
			Caption:             "Hello #world",
			LikesCount:          100 + i,
			CommentsCount:       10,
			Timestamp:           time.Now().Add(-time.Duration(i) * time.Hour),
			OwnerUsername:       username,
			OwnerFullName:       "Test User",
			OwnerFollowersCount: 5000,
			OwnerVerified:       true,
		})
	}
	return posts
}

func TestScrapeAccountPersistsAccountAndPosts(t *testing.T) {
	accounts := newMemAccountRepo()
	posts := newMemPostRepo()
	svc := &collectionService{
		mock:     &stubScraper{posts: rawFixture("athlete", 3)},
		accounts: accounts,
		posts:    posts,
		now:      time.Now,
	}

	result, err := svc.ScrapeAccount(context.Background(), "Athlete")
	require.NoError(t, err)

	assert.Equal(t, "athlete", result.Username)
	assert.Equal(t, model.SourceMock, result.Source)
	assert.Equal(t, 3, result.PostsCollected)
	assert.Equal(t, 5000, result.FollowerCount)

	saved, err := accounts.GetByUsername(context.Background(), "athlete")
	require.NoError(t, err)
	assert.Equal(t, "Test User", saved.DisplayName)
	assert.True(t, saved.VerificationStatus)
	assert.Len(t, posts.posts, 3)
}

func TestScrapeAccountFailsWhenScraperFails(t *testing.T) {
	svc := &collectionService{
		mock:     &stubScraper{err: errors.New("provider down")},
		accounts: newMemAccountRepo(),
		posts:    newMemPostRepo(),
		now:      time.Now,
	}

	_, err := svc.ScrapeAccount(context.Background(), "athlete")
	require.Error(t, err)

	var collectionErr *model.CollectionError
	require.ErrorAs(t, err, &collectionErr)
	assert.Equal(t, model.ErrCodeScrapeFailed, collectionErr.Code)
}

func TestCollectAllIsolatesFailures(t *testing.T) {
	accounts := newMemAccountRepo()
	_ = accounts.Upsert(context.Background(), &accountModel.Account{Username: "good"})

	posts := newMemPostRepo()
	svc := &collectionService{
		mock:     &stubScraper{posts: rawFixture("good", 2)},
		accounts: accounts,
		posts:    posts,
		now:      time.Now,
	}

	stats, err := svc.CollectAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.AccountsProcessed)
	assert.Equal(t, 0, stats.AccountsFailed)
	assert.Equal(t, 2, stats.PostsCollected)
}

func TestMockScraperShapesData(t *testing.T) {
	mock := scraper.NewMockScraper()
	posts, err := mock.FetchPosts(context.Background(), "cristiano", 0)
	require.NoError(t, err)
	require.Len(t, posts, 8)

	for _, p := range posts {
		assert.Equal(t, 620000000, p.OwnerFollowersCount)
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Caption)
		assert.Greater(t, p.LikesCount, 0)
	}
	assert.Equal(t, "Cristiano Ronaldo", posts[0].OwnerFullName)
}
