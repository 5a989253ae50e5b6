package points_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// GetEmployeePoints godoc
// @Summary Get employee points overview
// @Description Per-employee balances with earned/spent totals, for the admin points page
// @Tags Admin - Points
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param department query string false "Filter by department"
// @Success 200 {object} models.ApiResponse{data=[]models.EmployeePoints}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/points/employees [get]
func GetEmployeePoints(c *gin.Context) {
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

	countQuery := config.EnergyGorm.WithContext(ctx).Model(&models.User{}).Where("is_active = ?", true)
	if dept := c.Query("department"); dept != "" {
		countQuery = countQuery.Where("department = ?", dept)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count employees"))
		return
	}

	query := config.EnergyGorm.WithContext(ctx).
		Table("users u").
		Select(`u.id AS user_id, u.full_name, u.department,
			COALESCE(SUM(pt.delta), 0) AS balance,
			COALESCE(SUM(CASE WHEN pt.type = 'earn' THEN pt.delta ELSE 0 END), 0) AS total_earned,
			COALESCE(SUM(CASE WHEN pt.type = 'spend' THEN -pt.delta ELSE 0 END), 0) AS total_spent,
			COALESCE(MAX(pt.created_at), u.created_at) AS last_activity`).
		Joins("LEFT JOIN point_transactions pt ON pt.user_id = u.id").
		Where("u.is_active = ?", true).
		Group("u.id, u.full_name, u.department, u.created_at").
		Order("balance DESC").
		Limit(limit).
		Offset(offset)

	if dept := c.Query("department"); dept != "" {
		query = query.Where("u.department = ?", dept)
	}

	employees := make([]models.EmployeePoints, 0)
	if err := query.Scan(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch employee points"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Employee points fetched successfully", employees, meta))
}
