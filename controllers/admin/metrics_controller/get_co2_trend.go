package metrics_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCo2Trend godoc
// @Summary Get CO2 reduction trend
// @Description Monthly CO2 reduction totals for the last N months
// @Tags Admin - Metrics
// @Produce json
// @Security BearerAuth
// @Param months query int false "Number of months" default(12)
// @Success 200 {object} models.ApiResponse{data=models.Co2TrendResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/metrics/co2-trend [get]
func GetCo2Trend(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))
	if months < 1 || months > 60 {
		months = 12
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var points []models.Co2TrendItem
	if err := config.EnergyGorm.WithContext(ctx).
		Raw(`
			SELECT
				TO_CHAR(date_trunc('month', timestamp), 'YYYY-MM') AS period,
				COALESCE(SUM(co2_kg), 0)::float8 AS co2_kg
			FROM energy_records
			WHERE timestamp >= date_trunc('month', NOW()) - (? || ' months')::interval
			GROUP BY date_trunc('month', timestamp)
			ORDER BY date_trunc('month', timestamp) ASC
		`, months-1).
		Scan(&points).Error; err != nil {
		log.Printf("[admin.metrics-co2-trend] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch CO2 trend"))
		return
	}

	response := &models.Co2TrendResponse{
		CompanyID: 1,
		Points:    points,
	}

	log.Printf("[admin.metrics-co2-trend] respond 200 points=%d", len(points))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "CO2 trend retrieved successfully", response))
}
