package auth_controller

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func createOrUpdateUser(email, name, googleID string) (*models.User, error) {
	var user models.User

	// Try to find existing user by email
	result := config.EnergyGorm.
		Where("email = ?", email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user
			user = models.User{
				Email:    email,
				FullName: name,
				GoogleID: &googleID,
				IsActive: true,
			}

			if err := config.EnergyGorm.Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{}

	// Only set name if user never had one
	if user.FullName == "" {
		updates["full_name"] = name
	}

	// Attach Google account if not already linked
	if user.GoogleID == nil || *user.GoogleID == "" {
		updates["google_id"] = googleID
	}

	if len(updates) > 0 {
		if err := config.EnergyGorm.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	// Sync struct with DB updates
	if user.FullName == "" {
		user.FullName = name
	}
	user.GoogleID = &googleID

	return &user, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, url.QueryEscape(errorMsg))
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
