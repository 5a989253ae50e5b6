// ════════════════════════════════════════════════════════════
// Path: controllers/mobile/upload_controller/upload_bill.go
// Utility bill upload to object storage
// ════════════════════════════════════════════════════════════

package upload_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/report"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
)

const maxBillSize = 10 << 20 // 10MB

// UploadBill godoc
// @Summary Upload a utility bill
// @Description Stores a utility bill image in object storage and returns a presigned URL
// @Tags Mobile - Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Bill image (JPEG, PNG or PDF, max 10MB)"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/upload [post]
func UploadBill(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No file provided"))
		return
	}
	if fileHeader.Size > maxBillSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "File exceeds the 10MB limit"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "application/pdf":
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Only JPEG, PNG and PDF files are accepted"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read file"))
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("bills/%s/%d_%s", userID, time.Now().UnixMilli(), report.SanitizeFilename(fileHeader.Filename))

	ctx := c.Request.Context()
	storage := services.GetStorageService()

	if err := storage.PutUpload(ctx, objectKey, file, fileHeader.Size, contentType); err != nil {
		log.Printf("[mobile.upload] ERROR put object=%s err=%v", objectKey, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to store file"))
		return
	}

	url, err := storage.PresignUploadURL(ctx, objectKey, 24*time.Hour)
	if err != nil {
		log.Printf("⚠️  [mobile.upload] presign failed object=%s err=%v", objectKey, err)
	}

	log.Printf("[mobile.upload] stored object=%s size=%s", objectKey, report.SizeLabel(fileHeader.Size))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Bill uploaded successfully", gin.H{
		"object_key": objectKey,
		"size":       fileHeader.Size,
		"url":        url,
	}))
}
