package admin_routes

import (
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/admin/points_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupPointsRoutes wires point-rule management and the employee points overview
func SetupPointsRoutes(rg *gin.RouterGroup) {
	points := rg.Group("/points")
	points.Use(middleware.AdminAuthMiddleware())
	{
		points.GET("/employees", points_controller.GetEmployeePoints)
	}

	rules := rg.Group("/point-rules")
	rules.Use(middleware.AdminAuthMiddleware())
	rules.Use(middleware.ActivityLoggingMiddleware())
	{
		rules.GET("", points_controller.GetPointRules)
		rules.POST("", points_controller.CreatePointRule)
		rules.PATCH("/:id", points_controller.UpdatePointRule)
		rules.DELETE("/:id", points_controller.DeletePointRule)
	}
}
