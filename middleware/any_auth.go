package middleware

import (
	"net/http"
	"strings"

	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-gonic/gin"
)

// AnyAuthMiddleware accepts either an admin or an employee token. Used on
// shared read endpoints (company metrics, reward catalog) that both the
// dashboard and the employee app call.
func AnyAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Cookies first (admin dashboard, then employee app), Bearer last
		if cookieToken, err := c.Cookie("admin_token"); err == nil && cookieToken != "" {
			token = cookieToken
		} else if cookieToken, err := c.Cookie("auth_token"); err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		if claims, err := services.VerifyAdminJWT(token); err == nil {
			c.Set("adminID", claims.AdminID)
			c.Set("adminEmail", claims.Email)
			c.Next()
			return
		}

		claims, err := services.VerifyUserJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)

		c.Next()
	}
}
