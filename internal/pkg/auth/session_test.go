package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/erenyil/enrollhub/internal/app/models"
	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
)

func newTestSessionService(ttl time.Duration) *SessionService {
	return NewSessionService(SessionConfig{
		SecretKey:   "test-secret-key",
		SessionTTL:  ttl,
		TokenIssuer: "enrollhub.test",
	})
}

func TestSessionTokenRoundTrip(t *testing.T) {
	service := newTestSessionService(time.Hour)
	user := &models.User{ID: 42, Username: "moderator"}

	token, err := service.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("IssueToken() returned an empty token")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "moderator" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "moderator")
	}
	if claims.Issuer != "enrollhub.test" {
		t.Errorf("claims.Issuer = %q, want %q", claims.Issuer, "enrollhub.test")
	}
}

func TestSessionTokenExpired(t *testing.T) {
	service := newTestSessionService(-time.Minute)
	user := &models.User{ID: 1, Username: "moderator"}

	token, err := service.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	if _, err := service.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestSessionTokenTampered(t *testing.T) {
	service := newTestSessionService(time.Hour)
	other := NewSessionService(SessionConfig{
		SecretKey:   "a-different-secret",
		SessionTTL:  time.Hour,
		TokenIssuer: "enrollhub.test",
	})

	token, err := other.IssueToken(&models.User{ID: 1, Username: "moderator"})
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	if _, err := service.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted a token signed with a different key")
	}
}

func TestSessionTokenEmpty(t *testing.T) {
	service := newTestSessionService(time.Hour)

	if _, err := service.ValidateToken(""); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("ValidateToken(\"\") error = %v, want ErrTokenInvalid", err)
	}
}

func TestSessionTTL(t *testing.T) {
	service := newTestSessionService(12 * time.Hour)
	if got := service.SessionTTL(); got != 12*time.Hour {
		t.Errorf("SessionTTL() = %v, want 12h", got)
	}
}
