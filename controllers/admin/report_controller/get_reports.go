package report_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
)

// GetReports godoc
// @Summary Get paginated report jobs
// @Description Retrieve report generation jobs, newest first
// @Tags Admin - Reports
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/reports [get]
func GetReports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	jobs, total, err := services.GetReportService().ListReports(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reports"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Reports fetched successfully", jobs, meta))
}

// GetReportHistory godoc
// @Summary Get recent generation history
// @Description The session-scoped newest-first list of generated reports shown on the reports page
// @Tags Admin - Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/reports/history [get]
func GetReportHistory(c *gin.Context) {
	items := services.GetReportService().History()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Report history retrieved", items))
}
