package handler

import (
	"github.com/dourado/shopdash-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, authHandler *AuthHandler, profileHandler *ProfileHandler, saleHandler *SaleHandler, dashboardHandler *DashboardHandler, settingHandler *SettingHandler, exportHandler *ExportHandler, backupHandler *BackupHandler) {
	api := e.Group("/api")
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Login is the only unauthenticated API route
	api.POST("/auth/login", authHandler.Login)

	// Auth routes (protected)
	auth := api.Group("/auth")
	auth.Use(authMiddleware.Authenticate())
	auth.GET("/verify", authHandler.Verify)
	auth.POST("/change-password", authHandler.ChangePassword)

	// Profile routes (protected)
	profiles := api.Group("/profiles")
	profiles.Use(authMiddleware.Authenticate())
	profiles.GET("", profileHandler.List)
	profiles.GET("/:id", profileHandler.Get)
	profiles.POST("", profileHandler.Create)
	profiles.PUT("/:id", profileHandler.Update)
	profiles.DELETE("/:id", profileHandler.Delete)

	// Sales ledger routes (protected)
	sales := api.Group("/sales")
	sales.Use(authMiddleware.Authenticate())
	sales.GET("", saleHandler.List)
	sales.GET("/date/:date", saleHandler.GetByDate)
	sales.POST("", saleHandler.SaveDay)
	sales.DELETE("/:id", saleHandler.Delete)

	// Dashboard routes (protected)
	stats := api.Group("/stats")
	stats.Use(authMiddleware.Authenticate())
	stats.GET("/dashboard", dashboardHandler.GetStats)

	// Settings routes (protected)
	settings := api.Group("/settings")
	settings.Use(authMiddleware.Authenticate())
	settings.GET("/target", settingHandler.GetTarget)
	settings.POST("/target", settingHandler.SetTarget)

	// Export routes (protected)
	export := api.Group("/export")
	export.Use(authMiddleware.Authenticate())
	export.GET("/csv", exportHandler.ExportCSV)

	// Backup trigger (protected)
	backup := api.Group("/backup")
	backup.Use(authMiddleware.Authenticate())
	backup.POST("", backupHandler.Trigger)
}
