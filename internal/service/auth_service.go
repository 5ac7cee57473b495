package service

import (
	"context"
	"errors"

	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService authenticates the two bootstrap accounts
type AuthService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login verifies credentials against the stored bcrypt hash. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &domain.LoginResponse{
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
