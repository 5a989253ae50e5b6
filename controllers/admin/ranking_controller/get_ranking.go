package ranking_controller

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

// GetRanking godoc
// @Summary Get CO2 reduction leaderboard
// @Description Employees ranked by CO2 reduction for one month
// @Tags Admin - Ranking
// @Produce json
// @Security BearerAuth
// @Param period query string false "Target month (YYYY-MM, defaults to current)"
// @Param limit query int false "Max entries" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.RankingEntry}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/ranking [get]
func GetRanking(c *gin.Context) {
	period := c.DefaultQuery("period", time.Now().Format("2006-01"))
	start, err := time.Parse("2006-01", period)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid period, expected YYYY-MM"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	if cached, ok := metrics_cache.GetRanking(period); ok {
		if len(cached) > limit {
			cached = cached[:limit]
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Ranking retrieved successfully", cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var entries []models.RankingEntry
	if err := config.EnergyGorm.WithContext(ctx).
		Raw(`
			SELECT
				u.id AS user_id,
				u.full_name AS user_name,
				u.department,
				COALESCE(SUM(er.co2_kg), 0)::float8 AS reduced_co2_kg,
				RANK() OVER (ORDER BY COALESCE(SUM(er.co2_kg), 0) DESC)::int AS rank,
				COALESCE((
					SELECT SUM(pt.delta) FROM point_transactions pt
					WHERE pt.user_id = u.id AND pt.type = 'earn'
					AND pt.created_at >= ? AND pt.created_at < ?
				), 0)::int AS points_earned
			FROM users u
			JOIN energy_records er ON er.user_id = u.id
			WHERE er.timestamp >= ? AND er.timestamp < ?
			GROUP BY u.id, u.full_name, u.department
			ORDER BY reduced_co2_kg DESC
			LIMIT 100
		`, start, start.AddDate(0, 1, 0), start, start.AddDate(0, 1, 0)).
		Scan(&entries).Error; err != nil {
		log.Printf("[admin.ranking] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch ranking"))
		return
	}

	metrics_cache.SetRanking(period, entries)

	if len(entries) > limit {
		entries = entries[:limit]
	}

	log.Printf("[admin.ranking] respond 200 period=%s entries=%d", period, len(entries))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ranking retrieved successfully", entries))
}
