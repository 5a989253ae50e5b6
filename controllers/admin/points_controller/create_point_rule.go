package points_controller

import (
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// CreatePointRule godoc
// @Summary Create a point rule
// @Description Create a rule defining how employees earn points (per_kg, rank_bonus, streak)
// @Tags Admin - Points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rule body models.PointRuleRequest true "Rule details"
// @Success 201 {object} models.ApiResponse{data=models.PointRule}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/point-rules [post]
func CreatePointRule(c *gin.Context) {
	var req models.PointRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	params := req.Params
	if params == nil {
		params = datatypes.JSON([]byte("{}"))
	}

	rule := models.PointRule{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Value:       req.Value,
		Params:      params,
		Active:      active,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.EnergyGorm.WithContext(ctx).Create(&rule).Error; err != nil {
		log.Printf("[points.rule.create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create point rule"))
		return
	}

	log.Printf("[points.rule.create] created %s (%s)", rule.Name, rule.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Point rule created successfully", rule))
}
