package repository

import (
	"context"

	"social-analytics-backend/internal/domains/account/model"
)

// AccountRepository is the store contract the analytics and collection
// layers depend on. Usernames passed in are expected to be normalized
// (lowercase, trimmed).
type AccountRepository interface {
	// Upsert inserts or updates an account keyed on username.
	Upsert(ctx context.Context, account *model.Account) error

	// GetByUsername returns the account or model.ErrAccountNotFound.
	GetByUsername(ctx context.Context, username string) (*model.Account, error)

	// List returns accounts ordered by follower count descending.
	List(ctx context.Context, limit, offset int) ([]model.Account, error)

	// ListUsernames returns every tracked username.
	ListUsernames(ctx context.Context) ([]string, error)

	// TopByFollowers returns the n accounts with the most followers.
	TopByFollowers(ctx context.Context, n int) ([]model.Account, error)

	// Count returns the total number of tracked accounts.
	Count(ctx context.Context) (int, error)
}
