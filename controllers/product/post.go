package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sheep-june/react-node-shop/middleware"
	"github.com/sheep-june/react-node-shop/models"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Title       string   `json:"title" binding:"required,max=30"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Category    int      `json:"category"`
}

// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Title:       input.Title,
			Description: input.Description,
			Price:       input.Price,
			Images:      input.Images,
			Category:    input.Category,
			WriterID:    user.ID,
		}
		if product.Category == 0 {
			product.Category = 1
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
