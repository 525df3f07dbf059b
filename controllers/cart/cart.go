package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sheep-june/react-node-shop/middleware"
	"github.com/sheep-june/react-node-shop/models"
	"gorm.io/gorm"
)

type AddCartInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

// CartProductInfo is a product record with the cart quantity merged on.
type CartProductInfo struct {
	models.Product
	Quantity int `json:"quantity"`
}

// POST /users/cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Validate the product before touching the cart
		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var items []models.CartItem
		if err := db.Where("user_id = ?", user.ID).Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		// Duplicate product → bump the quantity instead of adding a row
		var existing *models.CartItem
		for i := range items {
			if items[i].ProductID == input.ProductID {
				existing = &items[i]
				break
			}
		}

		if existing != nil {
			if err := db.Model(existing).Update("quantity", existing.Quantity+1).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		} else {
			newItem := models.CartItem{
				UserID:    user.ID,
				ProductID: input.ProductID,
				Quantity:  1,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&newItem).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
		}

		var cart []models.CartItem
		if err := db.Where("user_id = ?", user.ID).Order("id").Find(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// DELETE /users/cart?productId=...
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productIDStr := c.Query("productId")
		productID, err := strconv.ParseUint(productIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
			return
		}

		result := db.Where("user_id = ? AND product_id = ?", user.ID, uint(productID)).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		var cart []models.CartItem
		if err := db.Where("user_id = ?", user.ID).Order("id").Find(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		productInfo := make([]CartProductInfo, 0, len(cart))
		if len(cart) > 0 {
			ids := make([]uint, 0, len(cart))
			for _, item := range cart {
				ids = append(ids, item.ProductID)
			}

			var products []models.Product
			if err := db.Preload("Writer", func(tx *gorm.DB) *gorm.DB {
				return tx.Select("id", "email", "name", "role", "image", "created_at")
			}).Where("id IN ?", ids).Find(&products).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
				return
			}

			// Merge each cart line's quantity onto its product record
			for _, item := range cart {
				for _, p := range products {
					if p.ID == item.ProductID {
						productInfo = append(productInfo, CartProductInfo{Product: p, Quantity: item.Quantity})
						break
					}
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"cart":        cart,
			"productInfo": productInfo,
		})
	}
}
