// Path: controllers/mobile/device_controller/update_device.go

package device_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateDevice godoc
// @Summary Update a device
// @Description Partially updates one device owned by the authenticated employee. The device type is immutable.
// @Tags Mobile - Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Param request body models.UpdateDeviceRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Device}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/devices/{id} [patch]
func UpdateDevice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var req models.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid device data: "+err.Error()))
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

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.SerialNumber != nil {
		updates["serial_number"] = *req.SerialNumber
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Efficiency != nil {
		updates["efficiency"] = *req.Efficiency
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.LastMaintenance != nil {
		updates["last_maintenance"] = *req.LastMaintenance
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.EnergyGorm.WithContext(ctx).
		Model(&device).
		Updates(updates).Error; err != nil {
		log.Printf("[mobile.devices] ERROR update device=%s err=%v", device.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update device"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Device updated successfully", device))
}
