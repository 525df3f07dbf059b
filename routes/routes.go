package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up User, Product, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, uploadDir string) {
	// 1. User routes (register/login public, the rest JWT-protected)
	SetupUserRoutes(r, db)

	// 2. Product routes (browse public, create/upload JWT-protected)
	SetupProductRoutes(r, db, uploadDir)

	// 3. Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
