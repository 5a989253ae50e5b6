package points_controller

import (
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPointRules godoc
// @Summary Get point rules
// @Description Retrieve all point rules, optionally filtered by active state
// @Tags Admin - Points
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Filter by active state"
// @Success 200 {object} models.ApiResponse{data=[]models.PointRule}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/point-rules [get]
func GetPointRules(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.EnergyGorm.WithContext(ctx).Model(&models.PointRule{})

	if active := c.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}

	rules := make([]models.PointRule, 0)
	if err := query.Order("created_at DESC").Find(&rules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch point rules"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Point rules fetched successfully", rules))
}
