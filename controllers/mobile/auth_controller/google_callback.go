// ════════════════════════════════════════════════════════════
// Path: controllers/mobile/auth_controller/google_callback.go
// Google SSO Callback Handler
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/GreenDesk-Energy/greendesk-backend/utils"
	"github.com/gin-gonic/gin"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Handles the callback from Google. Verifies the state token, exchanges the authorization code, validates the ID token, creates/updates the employee account, issues a JWT cookie and redirects back to the frontend.
// @Tags Mobile - Auth
// @Produce json
// @Success 307 "Redirect to frontend after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Failure 401 {object} models.ApiResponse "Unauthorized or token exchange failure"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("❌ State mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("❌ No code")
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	log.Printf("🔄 Exchanging code for token...")
	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("❌ Exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		log.Printf("❌ No id_token in response")
		redirectToFrontendWithError(c, "No ID token returned")
		return
	}

	log.Printf("🔄 Verifying ID token...")
	idToken, err := config.OIDCVerifier.Verify(context.Background(), rawIDToken)
	if err != nil {
		log.Printf("❌ ID token verification failed: %v", err)
		redirectToFrontendWithError(c, "Failed to verify ID token")
		return
	}

	var claims struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		log.Printf("❌ Decode failed: %v", err)
		redirectToFrontendWithError(c, "Failed to decode user info")
		return
	}

	if claims.Sub == "" {
		log.Printf("❌ No Google ID")
		redirectToFrontendWithError(c, "Google ID not found")
		return
	}
	if !claims.EmailVerified {
		log.Printf("❌ Unverified Google email: %s", claims.Email)
		redirectToFrontendWithError(c, "Google account email is not verified")
		return
	}

	log.Printf("✅ Got user: %s (Google ID: %s)", claims.Email, claims.Sub)

	user, err := createOrUpdateUser(claims.Email, claims.Name, claims.Sub)
	if err != nil {
		log.Printf("❌ DB error: %v", err)
		redirectToFrontendWithError(c, fmt.Sprintf("Database error: %v", err))
		return
	}

	if !user.IsActive {
		log.Printf("❌ Deactivated account: %s", user.Email)
		redirectToFrontendWithError(c, "Account is deactivated")
		return
	}

	// Log login event
	if err := utils.LogLoginEvent(c, user.ID, "google"); err != nil {
		log.Printf("⚠️  Failed to log login event: %v", err)
	}

	// Generate JWT token
	jwtToken, err := services.GenerateUserJWT(user.ID.String(), user.Email)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}

	// Set HTTP-only cookie with the token
	isProd := os.Getenv("ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		jwtToken,
		30*24*60*60, // matches token lifetime
		"/",
		"",
		isProd,
		true, // httpOnly
	)

	log.Printf("✅ Login successful: %s", user.Email)

	// Redirect to frontend callback (NO token in URL)
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/callback", frontendURL)

	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
