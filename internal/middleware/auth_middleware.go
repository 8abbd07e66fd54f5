package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/erenyil/enrollhub/internal/app/services"
	"github.com/erenyil/enrollhub/internal/pkg/auth"
)

// Context keys set by the session middleware
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// AuthMiddleware resolves the session cookie and guards moderator-only pages
type AuthMiddleware struct {
	sessions    *auth.SessionService
	authService services.AuthService
	cookieName  string
	logger      zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService, authService services.AuthService, cookieName string, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:    sessions,
		authService: authService,
		cookieName:  cookieName,
		logger:      logger,
	}
}

// LoadSession resolves the session cookie into request context when present.
// It never rejects a request; public pages simply render anonymously.
func (m *AuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err == nil && token != "" {
			if claims, err := m.sessions.ValidateToken(token); err == nil {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextUsername, claims.Username)
			}
		}
		c.Next()
	}
}

// RequireModerator guards moderator-only pages. A caller qualifies when
// authenticated and either staff or holding the moderator permission; anyone
// else is redirected to the landing page rather than served an error status.
func (m *AuthMiddleware) RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		// The permission check goes to the database on every request so that
		// grants made by the provisioning tools take effect without re-login.
		allowed, err := m.authService.IsModerator(c.Request.Context(), userID.(int64))
		if err != nil {
			m.logger.Error().Err(err).Int64("userId", userID.(int64)).Msg("Moderator check failed")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		if !allowed {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
