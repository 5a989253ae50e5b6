// Path: controllers/mobile/device_controller/delete_device.go

package device_controller

import (
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// DeleteDevice godoc
// @Summary Delete a device
// @Description Removes one device owned by the authenticated employee. Energy records that reference it keep their device_id.
// @Tags Mobile - Devices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/devices/{id} [delete]
func DeleteDevice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.EnergyGorm.WithContext(ctx).
		Where("id = ? AND owner_id = ?", c.Param("id"), userID).
		Delete(&models.Device{})
	if result.Error != nil {
		log.Printf("[mobile.devices] ERROR delete err=%v", result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete device"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Device not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Device deleted successfully", nil))
}
