package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/erenyil/enrollhub/internal/app/models"
	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
	"github.com/erenyil/enrollhub/internal/pkg/auth"
)

func newTestUser(t *testing.T, id int64, username, password string) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	return &models.User{
		ID:       id,
		Username: username,
		Email:    username + "@example.com",
		Password: hashed,
	}
}

func TestAuthServiceLogin(t *testing.T) {
	store := newMockUserStore()
	store.add(newTestUser(t, 1, "moderator", "s3cret"))
	service := NewAuthService(store, zerolog.Nop())
	ctx := context.Background()

	user, err := service.Login(ctx, "moderator", "s3cret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Username != "moderator" {
		t.Errorf("Login() username = %q, want %q", user.Username, "moderator")
	}
	if store.lastLogins != 1 {
		t.Errorf("Login() recorded %d last-login updates, want 1", store.lastLogins)
	}
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	store := newMockUserStore()
	store.add(newTestUser(t, 1, "moderator", "s3cret"))
	service := NewAuthService(store, zerolog.Nop())

	if _, err := service.Login(context.Background(), "moderator", "wrong"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthServiceLoginUnknownUser(t *testing.T) {
	service := NewAuthService(newMockUserStore(), zerolog.Nop())

	// Unknown usernames surface the same error as wrong passwords.
	if _, err := service.Login(context.Background(), "nobody", "whatever"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthServiceLoginSurvivesLastLoginFailure(t *testing.T) {
	store := newMockUserStore()
	store.add(newTestUser(t, 1, "moderator", "s3cret"))
	store.loginErr = errors.New("connection reset")
	service := NewAuthService(store, zerolog.Nop())

	if _, err := service.Login(context.Background(), "moderator", "s3cret"); err != nil {
		t.Errorf("Login() error = %v, want success despite last-login failure", err)
	}
}

func TestAuthServiceIsModerator(t *testing.T) {
	store := newMockUserStore()

	staff := newTestUser(t, 1, "staffer", "pw")
	staff.IsStaff = true
	store.add(staff)

	permitted := newTestUser(t, 2, "permitted", "pw")
	store.add(permitted)
	store.grant(2, models.PermissionModeratorAccess)

	plain := newTestUser(t, 3, "plain", "pw")
	store.add(plain)

	service := NewAuthService(store, zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name   string
		userID int64
		want   bool
	}{
		{"staff flag qualifies", 1, true},
		{"explicit permission qualifies", 2, true},
		{"ordinary account does not", 3, false},
		{"unknown account does not", 99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.IsModerator(ctx, tt.userID)
			if err != nil {
				t.Fatalf("IsModerator() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsModerator(%d) = %v, want %v", tt.userID, got, tt.want)
			}
		})
	}
}
