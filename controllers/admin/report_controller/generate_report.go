package report_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/report"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateReport godoc
// @Summary Generate a report
// @Description Queue report generation. Returns the job ID immediately; poll the status endpoint for progress and download when completed
// @Tags Admin - Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.GenerateReportRequest true "Report configuration"
// @Success 202 {object} models.ApiResponse{data=models.Report}
// @Failure 400 {object} models.ApiResponse "Invalid configuration or unavailable format"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/v1/reports/generate [post]
func GenerateReport(c *gin.Context) {
	adminIDStr, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	adminID, err := uuid.Parse(adminIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}

	var req models.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	job, err := services.GetReportService().Generate(c.Request.Context(), adminID, req)
	if err != nil {
		if errors.Is(err, report.ErrFormatUnavailable) {
			log.Printf("[report.generate] format unavailable: %s", req.Format)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Requested format is not available"))
			return
		}
		log.Printf("[report.generate] failed: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	log.Printf("[report.generate] job %s queued by %s", job.ID, adminIDStr)
	c.JSON(http.StatusAccepted, models.SuccessResponse(c, "Report generation started", job))
}
