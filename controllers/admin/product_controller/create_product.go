package product_controller

import (
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// CreateProduct godoc
// @Summary Create a reward product
// @Description Add a product to the reward catalog
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := models.Product{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		PointsRequired: req.PointsRequired,
		Stock:          req.Stock,
		Active:         active,
		ImageURL:       req.ImageURL,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.EnergyGorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[products.create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	log.Printf("[products.create] created %s (%s)", product.Title, product.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
