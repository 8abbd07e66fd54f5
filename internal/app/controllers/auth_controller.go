package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/erenyil/enrollhub/internal/app/models/dto"
	"github.com/erenyil/enrollhub/internal/app/services"
	"github.com/erenyil/enrollhub/internal/middleware"
	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
	"github.com/erenyil/enrollhub/internal/pkg/auth"
	"github.com/erenyil/enrollhub/internal/pkg/flash"
)

// AuthController handles login and logout
type AuthController struct {
	authService services.AuthService
	sessions    *auth.SessionService
	cookieName  string
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, sessions *auth.SessionService, cookieName string) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		cookieName:  cookieName,
	}
}

// ShowLoginForm displays the login page
func (ctrl *AuthController) ShowLoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{
		"title": "Moderator Login",
		"next":  sanitizeNext(c.Query("next")),
	})
}

// Login authenticates the submitted credentials. Success establishes the
// session cookie and redirects to the requested page or the dashboard;
// failure flashes an error and redirects back.
func (ctrl *AuthController) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Error(c, "Invalid username or password.")
		c.Redirect(http.StatusSeeOther, ctrl.backTo(c))
		return
	}

	user, err := ctrl.authService.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			flash.Error(c, "Invalid username or password.")
			c.Redirect(http.StatusSeeOther, ctrl.backTo(c))
			return
		}
		middleware.HandlePageError(c, err)
		return
	}

	token, err := ctrl.sessions.IssueToken(user)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	maxAge := int(ctrl.sessions.SessionTTL().Seconds())
	c.SetCookie(ctrl.cookieName, token, maxAge, "/", "", false, true)

	flash.Success(c, "Welcome back, "+user.Username+"!")

	next := sanitizeNext(form.Next)
	if next == "" {
		next = "/dashboard/"
	}
	c.Redirect(http.StatusSeeOther, next)
}

// Logout ends the session and returns to the landing page
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(ctrl.cookieName, "", -1, "/", "", false, true)
	flash.Info(c, "You have been logged out.")
	c.Redirect(http.StatusSeeOther, "/")
}

// backTo picks the redirect target after a failed login: the referring page
// when it is local, otherwise the landing page.
func (ctrl *AuthController) backTo(c *gin.Context) string {
	referer := c.Request.Referer()
	if referer == "" {
		return "/"
	}
	parsed, err := url.Parse(referer)
	if err != nil || parsed.Path == "" {
		return "/"
	}
	return parsed.Path
}

// sanitizeNext only allows site-local redirect targets.
func sanitizeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}
