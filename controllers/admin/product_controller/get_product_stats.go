package product_controller

import (
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// GetProductStats godoc
// @Summary Get catalog statistics
// @Description Totals, stock state and redemption counts for the products dashboard
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ProductStatsResponseItem}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	type statsRow struct {
		TotalProducts      int
		ActiveProducts     int
		OutOfStockProducts int
		AveragePoints      float64
	}
	var stats statsRow
	if err := config.EnergyGorm.WithContext(ctx).
		Model(&models.Product{}).
		Select(`COUNT(*) AS total_products,
			COUNT(*) FILTER (WHERE active) AS active_products,
			COUNT(*) FILTER (WHERE stock = 0) AS out_of_stock_products,
			COALESCE(AVG(points_required), 0) AS average_points`).
		Scan(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product stats"))
		return
	}

	var totalRedemptions int64
	if err := config.EnergyGorm.WithContext(ctx).
		Model(&models.Redemption{}).
		Count(&totalRedemptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count redemptions"))
		return
	}

	var topCategory string
	config.EnergyGorm.WithContext(ctx).
		Table("redemptions r").
		Joins("JOIN products p ON p.id = r.product_id").
		Select("p.category").
		Group("p.category").
		Order("COUNT(r.id) DESC").
		Limit(1).
		Scan(&topCategory)

	response := models.ProductStatsResponseItem{
		Type:               "catalog",
		TotalProducts:      stats.TotalProducts,
		ActiveProducts:     stats.ActiveProducts,
		OutOfStockProducts: stats.OutOfStockProducts,
		TotalRedemptions:   int(totalRedemptions),
		AveragePoints:      stats.AveragePoints,
		TopCategory:        topCategory,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats fetched successfully", response))
}
