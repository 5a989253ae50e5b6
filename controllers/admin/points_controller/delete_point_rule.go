package points_controller

import (
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeletePointRule godoc
// @Summary Delete a point rule
// @Description Remove a point rule. Already-awarded points are never clawed back
// @Tags Admin - Points
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/point-rules/{id} [delete]
func DeletePointRule(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid rule ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.EnergyGorm.WithContext(ctx).Delete(&models.PointRule{}, "id = ?", ruleID)
	if result.Error != nil {
		log.Printf("[points.rule.delete] failed for %s: %v", ruleID, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete point rule"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Point rule not found"))
		return
	}

	log.Printf("[points.rule.delete] deleted %s", ruleID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Point rule deleted successfully", nil))
}
