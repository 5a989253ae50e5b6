// ════════════════════════════════════════════════════════════
// Path: controllers/mobile/device_controller/create_device.go
// ════════════════════════════════════════════════════════════

package device_controller

import (
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateDevice godoc
// @Summary Register a device
// @Description Registers a metering device (smart meter, gas meter, solar inverter) for the authenticated employee
// @Tags Mobile - Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DeviceRequest true "Device data"
// @Success 201 {object} models.ApiResponse{data=models.Device}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/devices [post]
func CreateDevice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var req models.DeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid device data: "+err.Error()))
		return
	}

	ownerID, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user session"))
		return
	}

	device := models.Device{
		Name:             req.Name,
		DeviceType:       req.DeviceType,
		Model:            req.Model,
		SerialNumber:     req.SerialNumber,
		Capacity:         req.Capacity,
		Efficiency:       req.Efficiency,
		Location:         req.Location,
		IsActive:         true,
		InstallationDate: req.InstallationDate,
		LastMaintenance:  req.LastMaintenance,
		OwnerID:          ownerID,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.EnergyGorm.WithContext(ctx).Create(&device).Error; err != nil {
		log.Printf("[mobile.devices] ERROR create err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register device"))
		return
	}

	log.Printf("[mobile.devices] created device=%s type=%s owner=%s", device.ID, device.DeviceType, userID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Device registered successfully", device))
}
