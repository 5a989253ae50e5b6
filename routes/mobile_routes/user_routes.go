package mobile_routes

import (
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/mobile/user_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up employee profile routes
func SetupUserRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", user_controller.GetMe)
		users.PUT("/me", user_controller.UpdateMe)
		users.PATCH("/me", user_controller.UpdateMe)
	}
}
