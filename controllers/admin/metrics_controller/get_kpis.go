package metrics_controller

import (
	"log"
	"net/http"
	"time"

	metrics_cache "github.com/GreenDesk-Energy/greendesk-backend/cache"
	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// GetKPIs godoc
// @Summary Get dashboard KPIs
// @Description Headline metrics for the admin dashboard: active users, usage totals, CO2 reduction and redemption totals
// @Tags Admin - Metrics
// @Produce json
// @Security BearerAuth
// @Param from_date query string false "Range start (YYYY-MM-DD)"
// @Param to_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.KPIResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/metrics/kpi [get]
func GetKPIs(c *gin.Context) {
	now := time.Now()
	fromDate := c.DefaultQuery("from_date", now.AddDate(0, -1, 0).Format("2006-01-02"))
	toDate := c.DefaultQuery("to_date", now.Format("2006-01-02"))

	rangeKey := fromDate + ":" + toDate
	if cached, ok := metrics_cache.GetKPI(rangeKey); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "KPIs retrieved successfully", cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	type usageRow struct {
		ActiveUsers         int
		ElectricityTotalKwh float64
		GasTotalM3          float64
		CO2ReductionTotalKg float64
	}
	var usage usageRow
	if err := config.EnergyGorm.WithContext(ctx).
		Raw(`
			SELECT
				COUNT(DISTINCT user_id)::int AS active_users,
				COALESCE(SUM(electricity_kwh), 0)::float8 AS electricity_total_kwh,
				COALESCE(SUM(gas_m3), 0)::float8 AS gas_total_m3,
				COALESCE(SUM(co2_kg), 0)::float8 AS co2_reduction_total_kg
			FROM energy_records
			WHERE timestamp >= ? AND timestamp < ?::date + 1
		`, fromDate, toDate).
		Scan(&usage).Error; err != nil {
		log.Printf("[admin.metrics-kpis] ERROR query usage err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch KPIs"))
		return
	}

	type redemptionRow struct {
		TotalRedemptions int
		TotalPointsSpent int
	}
	var redemptions redemptionRow
	if err := config.EnergyGorm.WithContext(ctx).
		Raw(`
			SELECT
				COUNT(*)::int AS total_redemptions,
				COALESCE(SUM(points_spent), 0)::int AS total_points_spent
			FROM redemptions
			WHERE created_at >= ? AND created_at < ?::date + 1
		`, fromDate, toDate).
		Scan(&redemptions).Error; err != nil {
		log.Printf("[admin.metrics-kpis] ERROR query redemptions err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch KPIs"))
		return
	}

	response := &models.KPIResponse{
		CompanyID:           1,
		Range:               models.DateRange{FromDate: fromDate, ToDate: toDate},
		ActiveUsers:         usage.ActiveUsers,
		ElectricityTotalKwh: usage.ElectricityTotalKwh,
		GasTotalM3:          usage.GasTotalM3,
		CO2ReductionTotalKg: usage.CO2ReductionTotalKg,
		TotalRedemptions:    redemptions.TotalRedemptions,
		TotalPointsSpent:    redemptions.TotalPointsSpent,
	}

	metrics_cache.SetKPI(rangeKey, response)

	log.Printf("[admin.metrics-kpis] respond 200 range=%s", rangeKey)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "KPIs retrieved successfully", response))
}
