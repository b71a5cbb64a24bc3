package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vkazankov/voicebank/internal/logger"
	"github.com/vkazankov/voicebank/internal/model"
)

// Auth handles registration and credential logins issuing session tokens.
type Auth struct {
	users  model.UserStore
	tokens model.TokenManager
	logger *logger.Logger
}

func NewAuth(users model.UserStore, tokens model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (s *Auth) Register(ctx context.Context, email, password string) (model.User, error) {
	if email == "" {
		return model.User{}, model.NewValidationError("email is required")
	}
	if password == "" {
		return model.User{}, model.NewValidationError("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}

	user, err = s.users.Create(ctx, user)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			return model.User{}, validationErr
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns a session token. Unknown emails
// and wrong passwords produce the same error.
func (s *Auth) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", model.NewValidationError("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", model.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}
