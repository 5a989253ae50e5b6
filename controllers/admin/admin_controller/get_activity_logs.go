package admin_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// GetActivityLogs godoc
// @Summary Get admin activity logs
// @Description Paginated audit trail of admin actions, newest first
// @Tags Admin - Audit
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param resource_type query string false "Filter by resource type" Enums(point_rule, product, report, user, admin)
// @Param admin_id query string false "Filter by admin"
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.EnergyGorm.WithContext(ctx).Model(&models.ActivityLog{})

	if resourceType := c.Query("resource_type"); resourceType != "" {
		query = query.Where("resource_type = ?", resourceType)
	}
	if adminID := c.Query("admin_id"); adminID != "" {
		query = query.Where("admin_id = ?", adminID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count activity logs"))
		return
	}

	logs := make([]models.ActivityLog, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs fetched successfully", logs, meta))
}
