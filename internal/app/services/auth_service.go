package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/erenyil/enrollhub/internal/app/models"
	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
	"github.com/erenyil/enrollhub/internal/pkg/auth"
)

// UserStore is the persistence surface the auth service depends on.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	HasPermission(ctx context.Context, userID int64, codename string) (bool, error)
}

// AuthService handles credential checks and moderator authorization
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	IsModerator(ctx context.Context, userID int64) (bool, error)
}

type authService struct {
	userRepo UserStore
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo UserStore, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login verifies the credentials and returns the account. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the timestamp is informational.
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to record last login")
	}

	s.logger.Info().Int64("userId", user.ID).Str("username", user.Username).Msg("User logged in")
	return user, nil
}

// IsModerator reports whether the account may manage student records:
// staff status or the explicit moderator permission qualifies.
func (s *authService) IsModerator(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	if user.IsStaff {
		return true, nil
	}

	return s.userRepo.HasPermission(ctx, userID, models.PermissionModeratorAccess)
}
