package mobile_routes

import (
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/mobile/device_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/mobile/energy_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/mobile/upload_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupEnergyRoutes sets up device, energy record and bill upload routes
func SetupEnergyRoutes(router *gin.RouterGroup) {
	devices := router.Group("/devices")
	devices.Use(middleware.AuthMiddleware())
	{
		devices.GET("", device_controller.GetDevices)
		devices.POST("", device_controller.CreateDevice)
		devices.GET("/:id", device_controller.GetDeviceByID)
		devices.PATCH("/:id", device_controller.UpdateDevice)
		devices.DELETE("/:id", device_controller.DeleteDevice)
	}

	records := router.Group("/energy-records")
	records.Use(middleware.AuthMiddleware())
	{
		records.GET("", energy_controller.GetEnergyRecords)
		records.POST("", energy_controller.CreateEnergyRecord)
	}

	upload := router.Group("/upload")
	upload.Use(middleware.AuthMiddleware())
	{
		upload.POST("", upload_controller.UploadBill)
		upload.POST("/analyze-bill", upload_controller.AnalyzeBill)
	}
}
