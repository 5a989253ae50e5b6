package report_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DownloadReport godoc
// @Summary Download a completed report
// @Description Stream the generated artifact with an attachment disposition. Only completed jobs can be downloaded
// @Tags Admin - Reports
// @Produce application/octet-stream
// @Security BearerAuth
// @Param id path string true "Report job ID"
// @Success 200 {file} binary "Report file"
// @Failure 404 {object} models.ApiResponse "Report not found"
// @Failure 409 {object} models.ApiResponse "Report not completed yet"
// @Router /api/v1/reports/generate/download/{id} [get]
func DownloadReport(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid report ID"))
		return
	}

	payload, fileName, contentType, err := services.GetReportService().Download(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Report not found"))
			return
		}
		log.Printf("[report.download] job %s: %v", jobID, err)
		c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
		return
	}

	log.Printf("[report.download] job %s: serving %s (%d bytes)", jobID, fileName, len(payload))

	// RFC 5987 encoding keeps Japanese filenames intact across browsers
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(fileName)))
	c.Data(http.StatusOK, contentType, payload)
}
