package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/logger"
	"scooter-backoffice/internal/repository"
	"scooter-backoffice/internal/security"
)

type authService struct {
	adminRepo    repository.AdminUserRepository
	tokenManager security.TokenManager
}

func NewAuthService(adminRepo repository.AdminUserRepository, tokenManager security.TokenManager) AuthService {
	return &authService{
		adminRepo:    adminRepo,
		tokenManager: tokenManager,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.AdminUser, error) {
	user, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			logger.Warn("Login attempt for unknown admin", "username", username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Login attempt with wrong password", "username", username)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("sign access token: %w", err)
	}

	logger.Info("Admin logged in", "username", username)
	return token, user, nil
}

// HashPassword is used by the seeding binary when creating admin accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
