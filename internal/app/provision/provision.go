// Package provision creates and upgrades administrator and moderator
// accounts directly against the store, bypassing the web layer. It backs the
// command-line provisioning tools and the startup admin seed.
package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/erenyil/enrollhub/internal/app/models"
	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
	"github.com/erenyil/enrollhub/internal/pkg/auth"
)

// AccountStore is the persistence surface provisioning depends on.
type AccountStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateFlags(ctx context.Context, userID int64, isStaff, isSuperuser bool) error
	GrantPermission(ctx context.Context, userID int64, codename string) (bool, error)
}

// Result describes what a provisioning call actually did, so callers can
// report idempotent re-runs accurately.
type Result struct {
	User              *models.User
	Created           bool // A new account was created
	Elevated          bool // An existing account had its flags upgraded
	PermissionGranted bool // The moderator permission was newly attached
}

// Service provisions accounts idempotently.
type Service struct {
	userRepo AccountStore
}

// NewService creates a provisioning service
func NewService(userRepo AccountStore) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

// EnsureSuperadmin creates the named account as a full administrator, or
// elevates it if it already exists without full rights. Running it again is
// a no-op.
func (s *Service) EnsureSuperadmin(ctx context.Context, username, email, password string) (*Result, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		result := &Result{User: user}
		if !user.IsSuperuser || !user.IsStaff {
			if err := s.userRepo.UpdateFlags(ctx, user.ID, true, true); err != nil {
				return nil, err
			}
			user.IsStaff = true
			user.IsSuperuser = true
			result.Elevated = true
		}
		return result, nil

	case errors.Is(err, apperrors.ErrUserNotFound):
		user, err := s.createUser(ctx, username, email, password, true, true)
		if err != nil {
			return nil, err
		}
		return &Result{User: user, Created: true}, nil

	default:
		return nil, err
	}
}

// EnsureModerator creates the named account as a non-superuser staff member,
// or grants staff status if it exists without it, and attaches the moderator
// permission. Every step is idempotent.
func (s *Service) EnsureModerator(ctx context.Context, username, email, password string) (*Result, error) {
	var result *Result

	user, err := s.userRepo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		result = &Result{User: user}
		if !user.IsStaff {
			if err := s.userRepo.UpdateFlags(ctx, user.ID, true, false); err != nil {
				return nil, err
			}
			user.IsStaff = true
			user.IsSuperuser = false
			result.Elevated = true
		}

	case errors.Is(err, apperrors.ErrUserNotFound):
		created, err := s.createUser(ctx, username, email, password, true, false)
		if err != nil {
			return nil, err
		}
		result = &Result{User: created, Created: true}

	default:
		return nil, err
	}

	granted, err := s.userRepo.GrantPermission(ctx, result.User.ID, models.PermissionModeratorAccess)
	if err != nil {
		return nil, err
	}
	result.PermissionGranted = granted

	return result, nil
}

func (s *Service) createUser(ctx context.Context, username, email, password string, isStaff, isSuperuser bool) (*models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:    username,
		Email:       email,
		Password:    hashed,
		IsStaff:     isStaff,
		IsSuperuser: isSuperuser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
