package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/sheep-june/react-node-shop/controllers/product"
	"github.com/sheep-june/react-node-shop/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers all "/products/*" endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, uploadDir string) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))         // GET /products
		products.GET("/:id", productcontroller.GetProductsByID(db)) // GET /products/:id?type=array
	}

	authed := products.Group("")
	authed.Use(middleware.ValidateToken(db))
	{
		authed.POST("", productcontroller.CreateProduct(db))                   // POST /products
		authed.POST("/image", productcontroller.UploadProductImage(uploadDir)) // POST /products/image
	}
}
