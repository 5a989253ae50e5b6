// Path: controllers/mobile/product_controller/get_catalog.go

package product_controller

import (
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCatalog godoc
// @Summary List reward catalog
// @Description Active, in-stock reward products employees can redeem points for
// @Tags Mobile - Rewards
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/incentives/products [get]
func GetCatalog(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.EnergyGorm.WithContext(ctx).
		Where("active = true AND stock > 0")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	products := make([]models.Product, 0)
	if err := query.Order("points_required ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch catalog"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog fetched successfully", products))
}
