package metrics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// GetYoyUsage godoc
// @Summary Get year-over-year usage comparison
// @Description Compare one month's usage against the same month last year
// @Tags Admin - Metrics
// @Produce json
// @Security BearerAuth
// @Param month query string false "Target month (YYYY-MM, defaults to current)"
// @Success 200 {object} models.ApiResponse{data=models.YoyUsageResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/metrics/yoy-usage [get]
func GetYoyUsage(c *gin.Context) {
	month := c.DefaultQuery("month", time.Now().Format("2006-01"))
	target, err := time.Parse("2006-01", month)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid month, expected YYYY-MM"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	fetch := func(start time.Time) (models.UsageData, error) {
		var usage models.UsageData
		err := config.EnergyGorm.WithContext(ctx).
			Raw(`
				SELECT
					COALESCE(SUM(electricity_kwh), 0)::float8 AS electricity_kwh,
					COALESCE(SUM(gas_m3), 0)::float8 AS gas_m3
				FROM energy_records
				WHERE timestamp >= ? AND timestamp < ?
			`, start, start.AddDate(0, 1, 0)).
			Scan(&usage).Error
		return usage, err
	}

	current, err := fetch(target)
	if err != nil {
		log.Printf("[admin.metrics-yoy] ERROR query current err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch usage"))
		return
	}

	previous, err := fetch(target.AddDate(-1, 0, 0))
	if err != nil {
		log.Printf("[admin.metrics-yoy] ERROR query previous err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch usage"))
		return
	}

	response := &models.YoyUsageResponse{
		CompanyID: 1,
		Month:     month,
		Current:   current,
		Previous:  previous,
		Delta: models.UsageData{
			ElectricityKwh: current.ElectricityKwh - previous.ElectricityKwh,
			GasM3:          current.GasM3 - previous.GasM3,
		},
	}

	log.Printf("[admin.metrics-yoy] respond 200 month=%s", month)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Year-over-year usage retrieved successfully", response))
}
