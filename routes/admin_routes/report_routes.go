package admin_routes

import (
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/controllers/admin/report_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupReportRoutes wires the report export pipeline endpoints.
// Paths follow the dashboard client: everything hangs off
// /reports/generate, with status and download keyed by job ID.
func SetupReportRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.Use(middleware.RateLimiter(100, time.Minute))
	reports.Use(middleware.AdminAuthMiddleware())
	reports.Use(middleware.ActivityLoggingMiddleware())
	{
		// Generate (async job) + dry-run preview
		reports.POST("/generate", report_controller.GenerateReport)
		reports.POST("/generate/preview", report_controller.PreviewReport)

		// Job status + artifact
		reports.GET("/generate/status/:id", report_controller.GetReportStatus)
		reports.GET("/generate/download/:id", report_controller.DownloadReport)

		// Listings
		reports.GET("", report_controller.GetReports)
		reports.GET("/history", report_controller.GetReportHistory)
	}
}
