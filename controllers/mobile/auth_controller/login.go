// ════════════════════════════════════════════════════════════
// Path: controllers/mobile/auth_controller/login.go
// Employee password login
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/GreenDesk-Energy/greendesk-backend/utils"
	"github.com/gin-gonic/gin"
)

// Login godoc
// @Summary Employee login
// @Description Authenticates an employee with email and password, returns a bearer token and sets the auth_token cookie.
// @Tags Mobile - Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account deactivated"
// @Router /api/v1/login/access-token [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Username and password are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.EnergyGorm.WithContext(ctx).
		Where("email = ?", req.Username).
		First(&user).Error; err != nil {
		log.Printf("[mobile.login] unknown user %s", req.Username)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if !services.VerifyPassword(user.PasswordHash, req.Password) {
		log.Printf("[mobile.login] bad password for %s", req.Username)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is deactivated"))
		return
	}

	now := time.Now()
	if err := config.EnergyGorm.WithContext(ctx).
		Model(&user).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("⚠️  [mobile.login] failed to update last_login_at: %v", err)
	}

	if err := utils.LogLoginEvent(c, user.ID, "password"); err != nil {
		log.Printf("⚠️  [mobile.login] failed to log login event: %v", err)
	}

	token, err := services.GenerateUserJWT(user.ID.String(), user.Email)
	if err != nil {
		log.Printf("❌ [mobile.login] JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		token,
		30*24*60*60, // 30 days, matches token lifetime
		"/",
		"",
		isProd,
		true, // httpOnly
	)

	log.Printf("✅ [mobile.login] %s logged in", user.Email)
	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
