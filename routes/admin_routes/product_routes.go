package admin_routes

import (
	"github.com/GreenDesk-Energy/greendesk-backend/controllers/admin/product_controller"
	mobile_product "github.com/GreenDesk-Energy/greendesk-backend/controllers/mobile/product_controller"
	"github.com/GreenDesk-Energy/greendesk-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupProductRoutes wires reward catalog management. The dashboard and
// the employee app both address products under /incentives, so that is
// the primary surface; /products is kept for the management UI.
func SetupProductRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Incentives surface (client contract paths)
	// ════════════════════════════════════════════════════════════
	incentives := rg.Group("/incentives")

	// Catalog read: either token
	incentives.GET("/products", middleware.AnyAuthMiddleware(), product_controller.GetProducts)

	// Redemption: employee token (debits the caller's ledger)
	incentives.POST("/products/redeem", middleware.AuthMiddleware(), mobile_product.RedeemProduct)

	// Management writes: admin token + activity logging
	incentivesAdmin := incentives.Group("")
	incentivesAdmin.Use(middleware.AdminAuthMiddleware())
	incentivesAdmin.GET("/stats", product_controller.GetProductStats)
	incentivesAdmin.Use(middleware.ActivityLoggingMiddleware())
	{
		incentivesAdmin.POST("/products", product_controller.CreateProduct)
		incentivesAdmin.PUT("/products/:id", product_controller.UpdateProduct)
		incentivesAdmin.PATCH("/products/:id/toggle", product_controller.UpdateProduct)
	}

	// ════════════════════════════════════════════════════════════
	// Management UI surface
	// ════════════════════════════════════════════════════════════
	product := rg.Group("/products")
	product.Use(middleware.AdminAuthMiddleware())

	// Reads (no activity logging)
	product.GET("", product_controller.GetProducts)
	product.GET("/stats", product_controller.GetProductStats)
	product.GET("/:id", product_controller.GetProductByID)

	// Writes (Activity Logging)
	protected := product.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Create
		protected.POST("", product_controller.CreateProduct)

		// Update
		protected.PATCH("/:id", product_controller.UpdateProduct)

		// Delete
		protected.DELETE("/:id", product_controller.DeleteProduct)

		// Image upload
		protected.POST("/upload-image", product_controller.UploadProductImage)
	}
}
