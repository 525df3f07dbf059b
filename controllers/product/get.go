package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sheep-june/react-node-shop/models"
	"gorm.io/gorm"
)

// GetProductsByID returns one product, or several when ?type=array is set and
// the path segment carries comma-separated ids.
// URL param: /products/:id
func GetProductsByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		if idParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		tokens := []string{idParam}
		if c.Query("type") == "array" {
			tokens = strings.Split(idParam, ",")
		}

		ids := make([]uint, 0, len(tokens))
		for _, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			id, err := strconv.ParseUint(tok, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
				return
			}
			ids = append(ids, uint(id))
		}
		if len(ids) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var products []models.Product
		if err := db.Preload("Writer", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "email", "name", "role", "image", "created_at")
		}).Where("id IN ?", ids).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
