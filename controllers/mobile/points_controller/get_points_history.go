// Path: controllers/mobile/points_controller/get_points_history.go

package points_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPointsHistory godoc
// @Summary Get points history
// @Description Paginated ledger of the authenticated employee's point transactions, newest first
// @Tags Mobile - Points
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param type query string false "Filter by transaction type" Enums(earn, spend)
// @Success 200 {object} models.ApiResponse{data=[]models.PointTransaction}
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/points/history [get]
func GetPointsHistory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

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

	query := config.EnergyGorm.WithContext(ctx).
		Model(&models.PointTransaction{}).
		Where("user_id = ?", userID)

	if txType := c.Query("type"); txType == models.PointTypeEarn || txType == models.PointTypeSpend {
		query = query.Where("type = ?", txType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count transactions"))
		return
	}

	transactions := make([]models.PointTransaction, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch transactions"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Point transactions fetched successfully", transactions, meta))
}
