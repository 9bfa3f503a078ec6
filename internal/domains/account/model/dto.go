package model

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	postModel "social-analytics-backend/internal/domains/post/model"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)

// =====================================================
// REQUEST DTOs
// =====================================================

// RegisterAccountRequest registers a new account to track. Collection
// for the account is scheduled right after registration.
type RegisterAccountRequest struct {
	Username    string `json:"username" binding:"required"`
	AccountType string `json:"account_type,omitempty"`
}

func (r RegisterAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 30).Error("username must be 1-30 characters"),
			validation.Match(usernamePattern).Error("username may only contain letters, digits, dots and underscores"),
		),
		validation.Field(&r.AccountType,
			validation.In(AccountTypeBusiness, AccountTypePersonal, AccountTypeCreator).
				Error("account_type must be one of: business, personal, creator"),
		),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// AccountListItem is the compact projection used by listing endpoints.
type AccountListItem struct {
	Username           string    `json:"username"`
	DisplayName        string    `json:"display_name"`
	FollowerCount      int       `json:"follower_count"`
	FollowingCount     int       `json:"following_count,omitempty"`
	VerificationStatus bool      `json:"verification_status"`
	CollectionDate     time.Time `json:"collection_date"`
}

// AccountMetrics are the quick engagement numbers attached to the
// account detail endpoint. Computed over the most recent posts only.
type AccountMetrics struct {
	TotalPosts     int    `json:"total_posts"`
	AvgLikes       int    `json:"avg_likes"`
	AvgComments    int    `json:"avg_comments"`
	EngagementRate string `json:"engagement_rate"`
}

// AccountDetails bundles the account, its quick metrics and recent posts.
type AccountDetails struct {
	Account     *Account         `json:"account"`
	Metrics     AccountMetrics   `json:"metrics"`
	RecentPosts []postModel.Post `json:"recent_posts"`
}
