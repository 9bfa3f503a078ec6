package service

import (
	"context"

	"social-analytics-backend/internal/domains/account/model"
	"social-analytics-backend/internal/domains/account/repository"
	"social-analytics-backend/internal/domains/analytics/metrics"
	postRepo "social-analytics-backend/internal/domains/post/repository"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// ACCOUNT SERVICE
// =====================================================

const recentPostsLimit = 12

type accountService struct {
	accounts  repository.AccountRepository
	posts     postRepo.PostRepository
	scheduler ScrapeScheduler
}

func NewAccountService(
	accounts repository.AccountRepository,
	posts postRepo.PostRepository,
	scheduler ScrapeScheduler,
) AccountService {
	return &accountService{
		accounts:  accounts,
		posts:     posts,
		scheduler: scheduler,
	}
}

// RegisterAccount records a new account to track. The record starts
// as a stub; the collection worker fills in the profile shortly after.
func (s *accountService) RegisterAccount(ctx context.Context, req *model.RegisterAccountRequest) (*model.Account, error) {
	// Step 1: validate input
	if err := req.Validate(); err != nil {
		return nil, &model.AccountError{
			Code:    model.ErrCodeInvalidUsername,
			Message: err.Error(),
			Err:     model.ErrInvalidUsername,
		}
	}

	username := model.NormalizeUsername(req.Username)
	accountType := req.AccountType
	if accountType == "" {
		accountType = model.AccountTypePersonal
	}

	// Step 2: keep the existing record if the account is already tracked
	if existing, err := s.accounts.GetByUsername(ctx, username); err == nil {
		logger.Info("ℹ️ [ACCOUNT] Account already tracked, rescheduling collection", map[string]interface{}{
			"username": username,
		})
		s.scheduleCollection(ctx, username)
		return existing, nil
	}

	account := model.NewAccountStub(username, accountType)
	if err := s.accounts.Upsert(ctx, account); err != nil {
		return nil, err
	}

	logger.Info("✅ [ACCOUNT] Account registered", map[string]interface{}{
		"username":     username,
		"account_type": accountType,
	})

	// Step 3: schedule the first collection run
	s.scheduleCollection(ctx, username)

	return account, nil
}

// scheduleCollection enqueues a scrape; a queue hiccup must not fail
// the registration, data arrives with the next scheduled sweep anyway.
func (s *accountService) scheduleCollection(ctx context.Context, username string) {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.EnqueueScrapeAccount(ctx, username); err != nil {
		logger.Warn("⚠️ [ACCOUNT] Failed to schedule collection", err)
	}
}

func (s *accountService) GetAccountDetails(ctx context.Context, username string) (*model.AccountDetails, error) {
	username = model.NormalizeUsername(username)
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if err == model.ErrAccountNotFound {
			return nil, model.NewAccountNotFoundError(username)
		}
		return nil, err
	}

	posts, err := s.posts.GetByUsername(ctx, username, postRepo.SortByTimestamp, recentPostsLimit)
	if err != nil {
		return nil, err
	}

	details := &model.AccountDetails{
		Account:     account,
		RecentPosts: posts,
	}

	if len(posts) > 0 {
		totalLikes, totalComments := 0, 0
		for i := range posts {
			totalLikes += posts[i].LikeCount
			totalComments += posts[i].CommentCount
		}
		avgEngagement := metrics.AverageFloor(totalLikes+totalComments, len(posts))
		rate := metrics.EngagementRate(float64(avgEngagement), account.FollowerCount)

		details.Metrics = model.AccountMetrics{
			TotalPosts:     len(posts),
			AvgLikes:       metrics.AverageFloor(totalLikes, len(posts)),
			AvgComments:    metrics.AverageFloor(totalComments, len(posts)),
			EngagementRate: metrics.FormatRate2(rate),
		}
	} else {
		details.Metrics = model.AccountMetrics{EngagementRate: metrics.FormatRate2(0)}
	}

	return details, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit, offset int) ([]model.AccountListItem, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	accounts, err := s.accounts.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.accounts.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	items := make([]model.AccountListItem, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, model.AccountListItem{
			Username:           account.Username,
			DisplayName:        account.DisplayName,
			FollowerCount:      account.FollowerCount,
			FollowingCount:     account.FollowingCount,
			VerificationStatus: account.VerificationStatus,
			CollectionDate:     account.CollectionDate,
		})
	}

	return items, total, nil
}
