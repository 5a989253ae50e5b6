package product_controller

import (
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Remove a product from the reward catalog. Past redemptions keep their history
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.EnergyGorm.WithContext(ctx).Delete(&models.Product{}, "id = ?", productID)
	if result.Error != nil {
		log.Printf("[products.delete] failed for %s: %v", productID, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	log.Printf("[products.delete] deleted %s", productID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}
