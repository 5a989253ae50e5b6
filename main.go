// @title GreenDesk Energy API
// @version 1.0
// @description GreenDesk corporate energy management backend API documentation
// @host localhost:8000
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/admin/product_controller"
	_ "github.com/GreenDesk-Energy/greendesk-backend/docs"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/GreenDesk-Energy/greendesk-backend/routes/admin_routes"
	"github.com/GreenDesk-Energy/greendesk-backend/routes/mobile_routes"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	config.Migrate()
	// Redis connection
	config.ConnectRedis()
	// Object storage for report artifacts and bill uploads
	config.ConnectMinio()

	// Initialize Cloudinary service for product images
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := product_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// ✅ Initialize JWT Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Initialize Google OAuth for employee SSO
	config.InitGoogleOAuth()

	// ✅ Configure CORS for all content types including report downloads
	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // needed for report downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// ✅ Setup admin auth + audit routes (at /api/v1/admin prefix)
	admin_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	// Report pipeline + shared metrics live at the API root, matching
	// the paths the dashboard and employee clients call
	admin_routes.SetupReportRoutes(api)
	admin_routes.SetupMetricsRoutes(api)

	// Rate-limited admin feature routes (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	admin_routes.SetupPointsRoutes(adminGroup)
	admin_routes.SetupProductRoutes(adminGroup)

	// Employee-facing routes
	mobile_routes.SetupAuthRoutes(api)
	mobile_routes.SetupUserRoutes(api)
	mobile_routes.SetupEnergyRoutes(api)
	mobile_routes.SetupRewardsRoutes(api)
	log.Println("✅ Mobile routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
