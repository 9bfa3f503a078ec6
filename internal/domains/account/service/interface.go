package service

import (
	"context"

	"social-analytics-backend/internal/domains/account/model"
)

// ScrapeScheduler schedules background collection for an account.
// Satisfied by the queue task client.
type ScrapeScheduler interface {
	EnqueueScrapeAccount(ctx context.Context, username string) error
}

// AccountService manages the set of tracked accounts.
type AccountService interface {
	// RegisterAccount starts tracking a new account and schedules its
	// first collection run.
	RegisterAccount(ctx context.Context, req *model.RegisterAccountRequest) (*model.Account, error)

	// GetAccountDetails returns the account with quick metrics and
	// its most recent posts.
	GetAccountDetails(ctx context.Context, username string) (*model.AccountDetails, error)

	// ListAccounts pages through tracked accounts, most followed first.
	ListAccounts(ctx context.Context, limit, offset int) ([]model.AccountListItem, int, error)
}
