package model

import (
	"strings"
	"time"
)

// Account types
const (
	AccountTypeBusiness = "business"
	AccountTypePersonal = "personal"
	AccountTypeCreator  = "creator"
)

// Account represents a tracked social profile. The collection worker
// creates and updates accounts via upsert keyed on username; the
// analytics layer only reads them.
type Account struct {
	Username           string    `json:"username"`
	DisplayName        string    `json:"display_name"`
	Biography          string    `json:"biography"`
	ProfilePicURL      string    `json:"profile_pic_url"`
	FollowerCount      int       `json:"follower_count"`
	FollowingCount     int       `json:"following_count"`
	PostsCount         int       `json:"posts_count"`
	AccountType        string    `json:"account_type"`
	VerificationStatus bool      `json:"verification_status"`
	CollectionDate     time.Time `json:"collection_date"`
	LastUpdated        time.Time `json:"last_updated"`
}

// NewAccountStub builds the minimal record written at registration,
// before the first collection run fills in the profile.
func NewAccountStub(username, accountType string) *Account {
	now := time.Now().UTC()
	return &Account{
		Username:       NormalizeUsername(username),
		DisplayName:    username,
		AccountType:    accountType,
		CollectionDate: now,
		LastUpdated:    now,
	}
}

// NormalizeUsername applies the canonical form used as the natural key:
// trimmed and lowercased.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidAccountType reports whether t is one of the known account types.
func ValidAccountType(t string) bool {
	switch t {
	case AccountTypeBusiness, AccountTypePersonal, AccountTypeCreator:
		return true
	}
	return false
}
