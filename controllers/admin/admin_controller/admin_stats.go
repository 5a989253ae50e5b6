package admin_controller

import (
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
)

// GetAdminStats godoc
// @Summary Get platform stats
// @Description Counts for the admin overview: employees, devices, reports and live sessions
// @Tags Admin - Audit
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/stats [get]
func GetAdminStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var totalUsers, totalDevices, totalReports int64

	if err := config.EnergyGorm.WithContext(ctx).Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count users"))
		return
	}
	if err := config.EnergyGorm.WithContext(ctx).Model(&models.Device{}).Count(&totalDevices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count devices"))
		return
	}
	if err := config.EnergyGorm.WithContext(ctx).Model(&models.Report{}).Count(&totalReports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count reports"))
		return
	}

	activeSessions, err := services.GetAdminSessionService().CountActiveSessions(ctx)
	if err != nil {
		log.Printf("[admin.stats] failed to count sessions: %v", err)
		activeSessions = 0
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats retrieved successfully", gin.H{
		"total_users":     totalUsers,
		"total_devices":   totalDevices,
		"total_reports":   totalReports,
		"active_sessions": activeSessions,
	}))
}
