package repository

import (
	"context"

	"social-analytics-backend/internal/domains/user/model"
)

// UserRepository stores API users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}
