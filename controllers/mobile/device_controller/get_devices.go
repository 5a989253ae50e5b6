// Path: controllers/mobile/device_controller/get_devices.go

package device_controller

import (
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// GetDevices godoc
// @Summary List own devices
// @Description Returns all devices registered by the authenticated employee
// @Tags Mobile - Devices
// @Produce json
// @Security BearerAuth
// @Param device_type query string false "Filter by type" Enums(electricity_meter, gas_meter, solar)
// @Success 200 {object} models.ApiResponse{data=[]models.Device}
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/devices [get]
func GetDevices(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.EnergyGorm.WithContext(ctx).
		Where("owner_id = ?", userID)

	if deviceType := c.Query("device_type"); deviceType != "" {
		query = query.Where("device_type = ?", deviceType)
	}

	devices := make([]models.Device, 0)
	if err := query.Order("created_at DESC").Find(&devices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch devices"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Devices fetched successfully", devices))
}
