package dto

// LoginForm carries the login credentials plus the optional post-login
// destination.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}
