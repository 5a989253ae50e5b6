package report_controller

import (
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
)

// PreviewReport godoc
// @Summary Preview report contents
// @Description Resolve the metrics snapshot for a configuration without generating a file. Nothing is persisted
// @Tags Admin - Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.GenerateReportRequest true "Report configuration"
// @Success 200 {object} models.ApiResponse{data=models.ReportPreviewResponse}
// @Failure 400 {object} models.ApiResponse "Invalid configuration"
// @Router /api/v1/reports/generate/preview [post]
func PreviewReport(c *gin.Context) {
	var req models.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	preview, err := services.GetReportService().Preview(c.Request.Context(), req)
	if err != nil {
		log.Printf("[report.preview] failed: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Report preview generated", preview))
}
