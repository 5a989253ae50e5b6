package mobile_routes

import (
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/mobile/points_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/mobile/product_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/mobile/ranking_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRewardsRoutes sets up points, reward catalog and ranking routes
func SetupRewardsRoutes(router *gin.RouterGroup) {
	points := router.Group("/points")
	points.Use(middleware.AuthMiddleware())
	{
		points.GET("/balance", points_controller.GetPointsBalance)
		points.GET("/history", points_controller.GetPointsHistory)
	}

	products := router.Group("/products")
	products.Use(middleware.AuthMiddleware())
	{
		products.GET("", product_controller.GetCatalog)
		products.POST("/redeem", product_controller.RedeemProduct)
	}

	ranking := router.Group("/ranking")
	ranking.Use(middleware.AuthMiddleware())
	{
		ranking.GET("", ranking_controller.GetRanking)
	}
}
