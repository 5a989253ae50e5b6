package main

import (
	"testing"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/GreenDesk-Energy/greendesk-backend/routes/admin_routes"
	"github.com/GreenDesk-Energy/greendesk-backend/routes/mobile_routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Registers routes exactly as main() does, without connecting to
// anything, so the route table can be inspected.
func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api/v1")

	admin_routes.SetupAdminRoutes(api)
	admin_routes.SetupReportRoutes(api)
	admin_routes.SetupMetricsRoutes(api)

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	admin_routes.SetupPointsRoutes(adminGroup)
	admin_routes.SetupProductRoutes(adminGroup)

	mobile_routes.SetupAuthRoutes(api)
	mobile_routes.SetupUserRoutes(api)
	mobile_routes.SetupEnergyRoutes(api)
	mobile_routes.SetupRewardsRoutes(api)

	return router
}

// The dashboard and employee apps hardcode these paths. Renaming a
// route here breaks deployed clients, so the full surface is pinned.
func TestRouteTableMatchesClients(t *testing.T) {
	router := buildTestRouter()

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		// Report pipeline (dashboard)
		"POST /api/v1/reports/generate",
		"POST /api/v1/reports/generate/preview",
		"GET /api/v1/reports/generate/status/:id",
		"GET /api/v1/reports/generate/download/:id",
		"GET /api/v1/reports",
		"GET /api/v1/reports/history",

		// Company metrics (dashboard + employee app)
		"GET /api/v1/metrics/kpi",
		"GET /api/v1/metrics/monthly-usage",
		"GET /api/v1/metrics/co2-trend",
		"GET /api/v1/metrics/yoy-usage",

		// Employee auth and profile
		"POST /api/v1/login/access-token",
		"POST /api/v1/auth/login",
		"GET /api/v1/users/me",
		"PUT /api/v1/users/me",

		// Energy submissions and bill uploads
		"POST /api/v1/energy-records",
		"POST /api/v1/upload",
		"POST /api/v1/upload/analyze-bill",

		// Points and incentives
		"GET /api/v1/admin/points/employees",
		"GET /api/v1/admin/incentives/products",
		"POST /api/v1/admin/incentives/products",
		"PUT /api/v1/admin/incentives/products/:id",
		"PATCH /api/v1/admin/incentives/products/:id/toggle",
		"POST /api/v1/admin/incentives/products/redeem",
		"GET /api/v1/admin/incentives/stats",

		// Admin dashboard
		"POST /api/v1/admin/login",
		"GET /api/v1/admin/ranking",
	}

	for _, route := range want {
		assert.True(t, registered[route], "route not registered: %s", route)
	}
}
