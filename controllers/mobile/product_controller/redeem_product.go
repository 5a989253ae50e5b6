// ════════════════════════════════════════════════════════════
// Path: controllers/mobile/product_controller/redeem_product.go
// Atomic redemption: stock decrement + ledger debit in one tx
// ════════════════════════════════════════════════════════════

package product_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errOutOfStock = errors.New("product out of stock")

// RedeemProduct godoc
// @Summary Redeem a reward product
// @Description Exchanges points for a catalog product. Stock decrement and ledger debit happen in one transaction; concurrent redemptions of the last unit cannot both succeed.
// @Tags Mobile - Rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RedeemRequest true "Product to redeem"
// @Success 200 {object} models.ApiResponse{data=models.RedemptionResponse}
// @Failure 400 {object} models.ApiResponse "Insufficient points or out of stock"
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/incentives/products/redeem [post]
func RedeemProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var req models.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "product_id is required"))
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user session"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var newBalance int
	var productTitle string

	err = config.EnergyGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND active = true", req.ProductID).
			First(&product).Error; err != nil {
			return err
		}

		if product.Stock < 1 {
			return errOutOfStock
		}

		productTitle = product.Title

		balance, err := services.GetPointsService().Spend(tx, uid, product.PointsRequired, fmt.Sprintf("%s 交換", product.Title))
		if err != nil {
			return err
		}
		newBalance = balance

		if err := tx.Model(&product).
			Update("stock", gorm.Expr("stock - 1")).Error; err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}

		redemption := models.Redemption{
			UserID:      uid,
			ProductID:   product.ID,
			PointsSpent: product.PointsRequired,
		}
		return tx.Create(&redemption).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	case errors.Is(err, errOutOfStock):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product is out of stock"))
		return
	case errors.Is(err, services.ErrInsufficientPoints):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Insufficient points balance"))
		return
	case err != nil:
		log.Printf("[mobile.redeem] ERROR user=%s product=%s err=%v", userID, req.ProductID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to redeem product"))
		return
	}

	log.Printf("[mobile.redeem] user=%s redeemed %q balance=%d", userID, productTitle, newBalance)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product redeemed successfully", models.RedemptionResponse{
		Success:    true,
		NewBalance: newBalance,
	}))
}
