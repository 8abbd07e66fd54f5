package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
)

// HandlePageError renders the error page matching a service/repository error.
// Missing records get the 404 page; anything unexpected gets the 500 page.
func HandlePageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.HTML(http.StatusNotFound, "404.html", gin.H{
			"title": "Not Found",
		})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled page error")
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{
			"title": "Server Error",
		})
	}
	c.Abort()
}
