package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Logout the current admin and revoke session
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/logout [post]
func AdminLogout(c *gin.Context) {
	adminIDStr, exists := c.Get("adminID")
	if exists {
		log.Printf("[admin.logout] admin logging out: %s", adminIDStr)

		ctx, cancel := config.WithTimeout()
		defer cancel()

		adminID, err := uuid.Parse(adminIDStr.(string))
		if err == nil {
			sessionService := services.GetAdminSessionService()
			if err := sessionService.RevokeSessions(ctx, adminID); err != nil {
				log.Printf("[admin.logout] failed to revoke session: %v", err)
				// Don't fail the logout even if session revocation fails
			}
		}
	}

	// Clear token cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
