package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/sheep-june/react-node-shop/controllers/cart"
	paymentControllers "github.com/sheep-june/react-node-shop/controllers/payment"
	userControllers "github.com/sheep-june/react-node-shop/controllers/user"
	"github.com/sheep-june/react-node-shop/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/users/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.POST("/register", userControllers.Register(db)) // POST /users/register
		users.POST("/login", userControllers.Login(db))       // POST /users/login
	}

	authed := users.Group("")
	authed.Use(middleware.ValidateToken(db))
	{
		authed.GET("/auth", userControllers.Auth(db))    // GET  /users/auth
		authed.POST("/logout", userControllers.Logout()) // POST /users/logout

		authed.POST("/cart", cartControllers.AddCartItem(db))      // POST   /users/cart
		authed.DELETE("/cart", cartControllers.RemoveCartItem(db)) // DELETE /users/cart?productId=

		authed.POST("/payment", paymentControllers.Checkout(db)) // POST /users/payment
	}
}
