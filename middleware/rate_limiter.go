package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window limiter backed by Redis. Windows are
// scoped per IP, method and route template, so a burst of report
// generations does not starve unrelated endpoints for the same client.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "greendesk:rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		resetKey := key + ":resetAt"

		count, err := config.RedisClient.Incr(config.Ctx, key).Result()
		if err != nil {
			log.Printf("[middleware.rate] redis incr failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limiter unavailable"))
			c.Abort()
			return
		}

		// First hit in the window sets the expiry and a stable reset
		// timestamp that survives subsequent reads
		if count == 1 {
			config.RedisClient.Expire(config.Ctx, key, window)
			config.RedisClient.Set(config.Ctx, resetKey, time.Now().Add(window).Unix(), window)
		}

		resetAtUnix, _ := config.RedisClient.Get(config.Ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Controllers attach this to their response envelope
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			log.Printf("[middleware.rate] %s over limit on %s %s", c.ClientIP(), c.Request.Method, c.FullPath())
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
