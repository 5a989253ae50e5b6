package admin_routes

import (
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/admin/metrics_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupMetricsRoutes wires the company dashboard aggregates. Both the
// dashboard and the employee app read these, so either token is accepted.
func SetupMetricsRoutes(rg *gin.RouterGroup) {
	metrics := rg.Group("/metrics")
	metrics.Use(middleware.AnyAuthMiddleware())
	{
		metrics.GET("/kpi", metrics_controller.GetKPIs)
		metrics.GET("/monthly-usage", metrics_controller.GetMonthlyUsage)
		metrics.GET("/co2-trend", metrics_controller.GetCo2Trend)
		metrics.GET("/yoy-usage", metrics_controller.GetYoyUsage)
	}
}
