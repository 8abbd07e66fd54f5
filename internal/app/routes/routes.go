package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/erenyil/enrollhub/internal/app/controllers"
	"github.com/erenyil/enrollhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	enrollmentController *controllers.EnrollmentController,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Session context is available everywhere so public pages can show the
	// logged-in state.
	router.Use(authMiddleware.LoadSession())

	// --- Public pages ---
	router.GET("/", enrollmentController.Index)
	router.GET("/enroll/", enrollmentController.ShowEnrollForm)
	router.POST("/enroll/", enrollmentController.Enroll)
	router.GET("/enrollment-success/", enrollmentController.EnrollmentSuccess)

	router.GET("/login/", authController.ShowLoginForm)
	router.POST("/login/", authController.Login)
	router.POST("/logout/", authController.Logout)

	// --- Moderator-only dashboard ---
	dashboard := router.Group("/dashboard")
	dashboard.Use(authMiddleware.RequireModerator())
	{
		dashboard.GET("/", dashboardController.Dashboard)
		dashboard.GET("/search/", dashboardController.Search)
		dashboard.GET("/student/:id/", dashboardController.StudentDetail)
		dashboard.GET("/student/:id/update/", dashboardController.ShowUpdateForm)
		dashboard.POST("/student/:id/update/", dashboardController.UpdateStudent)
		dashboard.GET("/student/:id/delete/", dashboardController.ConfirmDelete)
		dashboard.POST("/student/:id/delete/", dashboardController.DeleteStudent)
	}
}
