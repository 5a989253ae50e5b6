// Path: controllers/mobile/device_controller/get_device_by_id.go

package device_controller

import (
	"errors"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDeviceByID godoc
// @Summary Get a device
// @Description Returns one device owned by the authenticated employee
// @Tags Mobile - Devices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Success 200 {object} models.ApiResponse{data=models.Device}
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/devices/{id} [get]
func GetDeviceByID(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var device models.Device
	err := config.EnergyGorm.WithContext(ctx).
		Where("id = ? AND owner_id = ?", c.Param("id"), userID).
		First(&device).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Device not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch device"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Device fetched successfully", device))
}
