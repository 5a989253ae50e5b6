package mobile_routes

import (
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/mobile/auth_controller"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all employee authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	// OAuth2-style token endpoint the employee app posts credentials to
	router.POST("/login/access-token", auth_controller.Login)

	auth := router.Group("/auth")
	{
		// Password login
		auth.POST("/login", auth_controller.Login)

		// Google SSO routes
		auth.GET("/google/login", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)

		auth.POST("/logout", auth_controller.Logout)
	}
}
