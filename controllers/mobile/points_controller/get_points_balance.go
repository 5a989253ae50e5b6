// Path: controllers/mobile/points_controller/get_points_balance.go

package points_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetPointsBalance godoc
// @Summary Get current points balance
// @Description Returns the authenticated employee's current points balance from the ledger
// @Tags Mobile - Points
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.PointsBalance}
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/points/balance [get]
func GetPointsBalance(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user session"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	balance, err := services.GetPointsService().Balance(ctx, uid)
	if err != nil {
		log.Printf("[mobile.points] ERROR balance err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch balance"))
		return
	}

	// Last ledger activity, zero time when the ledger is empty
	var lastUpdated time.Time
	config.EnergyGorm.WithContext(ctx).
		Model(&models.PointTransaction{}).
		Select("COALESCE(MAX(created_at), 'epoch'::timestamptz)").
		Where("user_id = ?", uid).
		Scan(&lastUpdated)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Balance retrieved successfully", models.PointsBalance{
		UserID:         uid,
		CurrentBalance: balance,
		LastUpdated:    lastUpdated,
	}))
}
