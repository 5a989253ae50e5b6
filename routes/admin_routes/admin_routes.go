package admin_routes

import (
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/admin/admin_controller"
	admin_auth "github.com/GreenDesk-Energy/greendesk-backend/controllers/admin/auth_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/admin/ranking_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up admin auth and audit routes with appropriate middleware
func SetupAdminRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Base Admin Group
	// ════════════════════════════════════════════════════════════

	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	// Auth
	admin.POST("/login", admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		// Audit
		protected.GET("/activity-logs", admin_controller.GetActivityLogs)
		protected.GET("/stats", admin_controller.GetAdminStats)

		// Leaderboard
		protected.GET("/ranking", ranking_controller.GetRanking)
	}
}
