package metrics_controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	metrics_cache "github.com/GreenDesk-Energy/greendesk-backend/cache"
	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMonthlyUsage godoc
// @Summary Get monthly usage for a year
// @Description Electricity and gas usage per month for chart visualization. Missing months are filled with zeros
// @Tags Admin - Metrics
// @Produce json
// @Security BearerAuth
// @Param year query int false "Target year (defaults to current)"
// @Success 200 {object} models.ApiResponse{data=models.MonthlyUsageResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/metrics/monthly-usage [get]
func GetMonthlyUsage(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid year"))
		return
	}

	if cached, ok := metrics_cache.GetMonthlyUsage(year); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly usage retrieved successfully", cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var rows []models.MonthlyUsageItem
	if err := config.EnergyGorm.WithContext(ctx).
		Raw(`
			SELECT
				EXTRACT(MONTH FROM timestamp)::int AS month,
				COALESCE(SUM(electricity_kwh), 0)::float8 AS electricity_kwh,
				COALESCE(SUM(gas_m3), 0)::float8 AS gas_m3
			FROM energy_records
			WHERE EXTRACT(YEAR FROM timestamp) = ?
			GROUP BY EXTRACT(MONTH FROM timestamp)
			ORDER BY month ASC
		`, year).
		Scan(&rows).Error; err != nil {
		log.Printf("[admin.metrics-monthly-usage] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch monthly usage"))
		return
	}

	// Fill missing months with zeros
	monthMap := make(map[int]models.MonthlyUsageItem, len(rows))
	for _, row := range rows {
		monthMap[row.Month] = row
	}

	months := make([]models.MonthlyUsageItem, 0, 12)
	for m := 1; m <= 12; m++ {
		if row, exists := monthMap[m]; exists {
			months = append(months, row)
		} else {
			months = append(months, models.MonthlyUsageItem{Month: m})
		}
	}

	response := &models.MonthlyUsageResponse{
		CompanyID: 1,
		Year:      year,
		Months:    months,
	}

	metrics_cache.SetMonthlyUsage(year, response)

	log.Printf("[admin.metrics-monthly-usage] respond 200 year=%d", year)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly usage retrieved successfully", response))
}
