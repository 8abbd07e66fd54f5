package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/erenyil/enrollhub/internal/middleware"
	"github.com/erenyil/enrollhub/internal/pkg/flash"
)

// render wraps c.HTML, attaching pending flash messages and the logged-in
// username so the shared layout can display them.
func render(c *gin.Context, status int, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = flash.Take(c)
	if username, ok := c.Get(middleware.ContextUsername); ok {
		data["currentUser"] = username
	}
	c.HTML(status, template, data)
}
