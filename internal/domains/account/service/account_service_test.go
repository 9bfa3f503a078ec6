package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-analytics-backend/internal/domains/account/model"
	postModel "social-analytics-backend/internal/domains/post/model"
)

// =====================================================
// FAKES
// =====================================================

type fakeAccountRepo struct {
	accounts map[string]*model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*model.Account{}}
}

func (r *fakeAccountRepo) Upsert(_ context.Context, a *model.Account) error {
	r.accounts[a.Username] = a
	return nil
}

func (r *fakeAccountRepo) GetByUsername(_ context.Context, username string) (*model.Account, error) {
	a, ok := r.accounts[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return a, nil
}

func (r *fakeAccountRepo) List(_ context.Context, _, _ int) ([]model.Account, error) {
	var out []model.Account
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAccountRepo) ListUsernames(_ context.Context) ([]string, error) { return nil, nil }

func (r *fakeAccountRepo) TopByFollowers(_ context.Context, _ int) ([]model.Account, error) {
	return nil, nil
}

func (r *fakeAccountRepo) Count(_ context.Context) (int, error) { return len(r.accounts), nil }

type fakePostRepo struct {
	posts []postModel.Post
}

func (r *fakePostRepo) Upsert(_ context.Context, _ *postModel.Post) error { return nil }

func (r *fakePostRepo) GetByUsername(_ context.Context, username, _ string, limit int) ([]postModel.Post, error) {
	var out []postModel.Post
	for _, p := range r.posts {
		if p.AccountUsername == username {
			out = append(out, p)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePostRepo) GetByUsernameSince(_ context.Context, _ string, _ time.Time) ([]postModel.Post, error) {
	return nil, nil
}

func (r *fakePostRepo) List(_ context.Context, _, _ int) ([]postModel.Post, error) { return nil, nil }

func (r *fakePostRepo) RecentCollected(_ context.Context, _ int) ([]postModel.Post, error) {
	return nil, nil
}

func (r *fakePostRepo) CountAll(_ context.Context) (int, error) { return len(r.posts), nil }

func (r *fakePostRepo) CountByUsername(_ context.Context, _ string) (int, error) { return 0, nil }

func (r *fakePostRepo) CountCollectedSince(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

func (r *fakePostRepo) TrendingHashtags(_ context.Context, _ int) ([]postModel.TrendingHashtag, error) {
	return nil, nil
}

type fakeScheduler struct {
	enqueued []string
}

func (f *fakeScheduler) EnqueueScrapeAccount(_ context.Context, username string) error {
	f.enqueued = append(f.enqueued, username)
	return nil
}

// =====================================================
// REGISTRATION
// =====================================================

func TestRegisterAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	scheduler := &fakeScheduler{}
	svc := NewAccountService(repo, &fakePostRepo{}, scheduler)

	account, err := svc.RegisterAccount(context.Background(), &model.RegisterAccountRequest{
		Username: "NewCreator",
	})
	require.NoError(t, err)

	assert.Equal(t, "newcreator", account.Username)
	assert.Equal(t, model.AccountTypePersonal, account.AccountType)
	assert.Equal(t, []string{"newcreator"}, scheduler.enqueued)
	assert.Contains(t, repo.accounts, "newcreator")
}

func TestRegisterAccountRejectsInvalidUsername(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo(), &fakePostRepo{}, &fakeScheduler{})

	_, err := svc.RegisterAccount(context.Background(), &model.RegisterAccountRequest{
		Username: "bad name!",
	})
	require.Error(t, err)

	var accountErr *model.AccountError
	require.ErrorAs(t, err, &accountErr)
	assert.Equal(t, model.ErrCodeInvalidUsername, accountErr.Code)
}

func TestRegisterAccountIdempotent(t *testing.T) {
	repo := newFakeAccountRepo()
	existing := &model.Account{Username: "known", DisplayName: "Known", FollowerCount: 42}
	_ = repo.Upsert(context.Background(), existing)

	scheduler := &fakeScheduler{}
	svc := NewAccountService(repo, &fakePostRepo{}, scheduler)

	account, err := svc.RegisterAccount(context.Background(), &model.RegisterAccountRequest{
		Username: "known",
	})
	require.NoError(t, err)

	// Existing record survives, but collection is rescheduled.
	assert.Equal(t, 42, account.FollowerCount)
	assert.Equal(t, []string{"known"}, scheduler.enqueued)
}

// =====================================================
// DETAILS
// =====================================================

func TestGetAccountDetails(t *testing.T) {
	repo := newFakeAccountRepo()
	_ = repo.Upsert(context.Background(), &model.Account{Username: "alpha", FollowerCount: 1000})

	posts := &fakePostRepo{posts: []postModel.Post{
		{AccountUsername: "alpha", LikeCount: 95, CommentCount: 5},
		{AccountUsername: "alpha", LikeCount: 15, CommentCount: 5},
	}}
	svc := NewAccountService(repo, posts, &fakeScheduler{})

	details, err := svc.GetAccountDetails(context.Background(), "Alpha")
	require.NoError(t, err)

	assert.Equal(t, 2, details.Metrics.TotalPosts)
	assert.Equal(t, 55, details.Metrics.AvgLikes)
	assert.Equal(t, 5, details.Metrics.AvgComments)
	assert.Equal(t, "6.00%", details.Metrics.EngagementRate)
	assert.Len(t, details.RecentPosts, 2)
}

func TestGetAccountDetailsUnknown(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo(), &fakePostRepo{}, &fakeScheduler{})

	_, err := svc.GetAccountDetails(context.Background(), "ghost")
	require.Error(t, err)

	var accountErr *model.AccountError
	require.ErrorAs(t, err, &accountErr)
	assert.Equal(t, model.ErrCodeAccountNotFound, accountErr.Code)
}
