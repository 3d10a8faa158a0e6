// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dreamwell/backend/internal/integration/entrypoint/controller"
	"github.com/dreamwell/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	userController      *controller.UserController
	dreamController     *controller.DreamController
	moodController      *controller.MoodController
	analyticsController *controller.AnalyticsController
	supportController   *controller.SupportController
	adminController     *controller.AdminController
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	dreamController *controller.DreamController,
	moodController *controller.MoodController,
	analyticsController *controller.AnalyticsController,
	supportController *controller.SupportController,
	adminController *controller.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		userController:      userController,
		dreamController:     dreamController,
		moodController:      moodController,
		analyticsController: analyticsController,
		supportController:   supportController,
		adminController:     adminController,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/signup", r.authController.Signup)
				auth.POST("/login", r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.GET("/verify-email", r.authController.VerifyEmail)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.GetProfile)
				users.PUT("/me", r.userController.UpdateProfile)
				users.PUT("/me/password", r.userController.ChangePassword)
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		if r.dreamController != nil && r.authMiddleware != nil {
			dreams := v1.Group("/dreams")
			dreams.Use(r.authMiddleware.Authenticate())
			{
				dreams.POST("", r.dreamController.Create)
				dreams.GET("", r.dreamController.List)
				dreams.GET("/search", r.dreamController.Search)
				dreams.GET("/:id", r.dreamController.Get)
				dreams.PUT("/:id", r.dreamController.Update)
				dreams.DELETE("/:id", r.dreamController.Delete)
				dreams.POST("/:id/reinterpret", r.dreamController.Reinterpret)
			}
		}

		if r.moodController != nil && r.authMiddleware != nil {
			moods := v1.Group("/moods")
			moods.Use(r.authMiddleware.Authenticate())
			{
				moods.POST("", r.moodController.Log)
				moods.GET("", r.moodController.List)
				moods.GET("/range", r.moodController.ListRange)
				moods.PUT("/:id", r.moodController.Update)
				moods.DELETE("/:id", r.moodController.Delete)
			}
		}

		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("", r.analyticsController.Get)
				analytics.GET("/export", r.analyticsController.Export)
			}
		}

		if r.supportController != nil && r.authMiddleware != nil {
			support := v1.Group("/support")
			support.Use(r.authMiddleware.Authenticate())
			{
				support.POST("/tickets", r.supportController.Create)
				support.GET("/tickets", r.supportController.List)
				support.GET("/tickets/:id", r.supportController.Get)
			}
		}

		if r.adminController != nil && r.authMiddleware != nil {
			admin := v1.Group("/admin")
			admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				admin.GET("/users", r.adminController.ListUsers)
				admin.GET("/users/:id", r.adminController.GetUser)
				admin.PUT("/users/:id/toggle-status", r.adminController.ToggleUserStatus)
				admin.GET("/users/:id/data", r.adminController.GetUserActivity)
				admin.GET("/dreams/flagged", r.adminController.FlaggedDreams)
				admin.GET("/analytics", r.adminController.SystemAnalytics)
				admin.GET("/support/tickets", r.adminController.ListTickets)
				admin.GET("/support/tickets/status/:status", r.adminController.ListTicketsByStatus)
				admin.POST("/support/tickets/:id/reply", r.adminController.ReplyTicket)
				admin.PUT("/support/tickets/:id/status", r.adminController.UpdateTicketStatus)
				admin.GET("/settings/:key", r.adminController.GetSetting)
				admin.PUT("/settings/:key", r.adminController.UpdateSetting)
			}
		}
	}
}
