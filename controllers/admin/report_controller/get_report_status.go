package report_controller

import (
	"errors"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReportStatus godoc
// @Summary Get report job status
// @Description Poll the status of a queued report. Progress runs 0-100; completed jobs expose the download endpoint
// @Tags Admin - Reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report job ID"
// @Success 200 {object} models.ApiResponse{data=models.ReportStatusResponse}
// @Failure 404 {object} models.ApiResponse "Report not found"
// @Router /api/v1/reports/generate/status/{id} [get]
func GetReportStatus(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid report ID"))
		return
	}

	job, err := services.GetReportService().GetReport(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Report not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	status := models.ReportStatusResponse{
		ReportID:    job.ID,
		Status:      job.Status,
		Progress:    job.Progress,
		Message:     job.ErrorMessage,
		CreatedAt:   job.CreatedAt,
		CompletedAt: job.CompletedAt,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Report status retrieved", status))
}
