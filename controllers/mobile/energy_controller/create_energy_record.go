// ════════════════════════════════════════════════════════════
// Path: controllers/mobile/energy_controller/create_energy_record.go
// ════════════════════════════════════════════════════════════

package energy_controller

import (
	"log"
	"net/http"

	metrics_cache "github.com/GreenDesk-Energy/greendesk-backend/cache"
	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateEnergyRecord godoc
// @Summary Record energy usage
// @Description Creates a usage reading for the authenticated employee. CO2 is derived from usage at insert time. Active per-kg point rules are applied against the previous reading.
// @Tags Mobile - Energy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.EnergyRecordRequest true "Usage reading"
// @Success 201 {object} models.ApiResponse{data=models.EnergyRecord}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/energy-records [post]
func CreateEnergyRecord(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var req models.EnergyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid record data: "+err.Error()))
		return
	}

	if req.ElectricityKwh == 0 && req.GasM3 == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one of electricity_kwh or gas_m3 must be set"))
		return
	}

	ownerID, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user session"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	source := req.Source
	if source == "" {
		source = models.RecordSourceManual
	}

	// Device readings must reference a device the employee owns
	if req.DeviceID != nil {
		var count int64
		if err := config.EnergyGorm.WithContext(ctx).
			Model(&models.Device{}).
			Where("id = ? AND owner_id = ?", req.DeviceID, ownerID).
			Count(&count).Error; err != nil || count == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown device"))
			return
		}
	}

	record := models.EnergyRecord{
		Timestamp:      req.Timestamp,
		ElectricityKwh: req.ElectricityKwh,
		GasM3:          req.GasM3,
		Source:         source,
		DeviceID:       req.DeviceID,
		UserID:         ownerID,
	}

	if err := config.EnergyGorm.WithContext(ctx).Create(&record).Error; err != nil {
		log.Printf("[mobile.energy] ERROR create err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save record"))
		return
	}

	// Cached aggregates are stale now
	metrics_cache.Invalidate()

	if err := services.GetPointsService().AwardForRecord(ctx, &record); err != nil {
		log.Printf("⚠️  [mobile.energy] point award failed: %v", err)
	}

	log.Printf("[mobile.energy] created record=%s user=%s co2=%.2fkg", record.ID, userID, record.CO2Kg)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Energy record saved successfully", record))
}
