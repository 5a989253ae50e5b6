package product_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// UploadProductImage godoc
// @Summary Upload a product image
// @Description Upload a reward product image to Cloudinary and return the delivery URL
// @Tags Admin - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Product image"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products/upload-image [post]
func UploadProductImage(c *gin.Context) {
	if cloudinaryService == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image hosting is not configured"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to open image file"))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	url, err := cloudinaryService.UploadImage(ctx, file, "", "greendesk/products")
	if err != nil {
		log.Printf("[products.upload-image] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	log.Printf("[products.upload-image] uploaded %s", fileHeader.Filename)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded successfully", gin.H{
		"image_url": url,
	}))
}
