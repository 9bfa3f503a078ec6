package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"social-analytics-backend/internal/domains/user/model"
	"social-analytics-backend/internal/domains/user/repository"
	"social-analytics-backend/pkg/jwt"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// USER SERVICE
// =====================================================

// UserService handles API user registration and login.
type UserService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
}

type userService struct {
	users      repository.UserRepository
	jwtManager *jwt.Manager
}

func NewUserService(users repository.UserRepository, jwtManager *jwt.Manager) UserService {
	return &userService{users: users, jwtManager: jwtManager}
}

func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	// Step 1: validate input
	if err := req.Validate(); err != nil {
		return nil, &model.UserError{
			Code:    model.ErrCodeValidation,
			Message: err.Error(),
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Step 2: hash the password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Step 3: persist, relying on the unique index for races
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return nil, model.NewEmailTakenError(email)
		}
		return nil, err
	}

	logger.Info("✅ [USER] User registered", map[string]interface{}{
		"user_id": user.ID.String(),
		"email":   email,
	})

	return s.issueTokens(user)
}

func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &model.UserError{
			Code:    model.ErrCodeValidation,
			Message: err.Error(),
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Same error as a bad password, do not leak which emails exist.
			return nil, model.NewInvalidCredentialsError()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	return s.issueTokens(user)
}

func (s *userService) issueTokens(user *model.User) (*model.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
