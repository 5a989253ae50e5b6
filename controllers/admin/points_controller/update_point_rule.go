package points_controller

import (
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdatePointRule godoc
// @Summary Update a point rule
// @Description Partially update a point rule. The rule type is immutable; create a new rule instead
// @Tags Admin - Points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param rule body models.UpdatePointRuleRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.PointRule}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/point-rules/{id} [patch]
func UpdatePointRule(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid rule ID"))
		return
	}

	var req models.UpdatePointRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var rule models.PointRule
	if err := config.EnergyGorm.WithContext(ctx).First(&rule, "id = ?", ruleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Point rule not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Value != nil {
		updates["value"] = *req.Value
	}
	if req.Params != nil {
		updates["params"] = *req.Params
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.EnergyGorm.WithContext(ctx).
		Model(&rule).
		Updates(updates).Error; err != nil {
		log.Printf("[points.rule.update] failed for %s: %v", ruleID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update point rule"))
		return
	}

	log.Printf("[points.rule.update] updated %s", ruleID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Point rule updated successfully", rule))
}
