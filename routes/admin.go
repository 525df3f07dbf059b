package routes

import (
	"github.com/gin-gonic/gin"
	paymentControllers "github.com/sheep-june/react-node-shop/controllers/payment"
	productcontroller "github.com/sheep-june/react-node-shop/controllers/product"
	"github.com/sheep-june/react-node-shop/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.GET("/products/export", productcontroller.ExportProductsToExcel(db)) // GET /admin/products/export
		admin.GET("/payments/ws", paymentControllers.PaymentWebSocketHandler)      // GET /admin/payments/ws
	}
}
