package paymentControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sheep-june/react-node-shop/middleware"
	"github.com/sheep-june/react-node-shop/models"
	"gorm.io/gorm"
)

type PaymentLineInput struct {
	ProductID uint    `json:"id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

// POST /users/payment
//
// Checkout appends purchase history, clears the cart, records an immutable
// payment snapshot and bumps each product's sold counter. The whole sequence
// runs in a single transaction so a failure mid-way cannot leave sold counts
// inconsistent with recorded history.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var lines []PaymentLineInput
		if err := c.ShouldBindJSON(&lines); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No items to purchase"})
			return
		}

		now := time.Now()
		payment := models.Payment{
			PaymentID: uuid.NewString(),
			UserID:    user.ID,
			UserEmail: user.Email,
			UserName:  user.Name,
			CreatedAt: now,
		}

		history := make([]models.HistoryEntry, 0, len(lines))
		for _, line := range lines {
			history = append(history, models.HistoryEntry{
				UserID:      user.ID,
				ProductID:   line.ProductID,
				Name:        line.Name,
				Price:       line.Price,
				Quantity:    line.Quantity,
				PurchasedAt: now,
				PaymentID:   uuid.NewString(),
			})
			payment.Items = append(payment.Items, models.PaymentItem{
				ProductID: line.ProductID,
				Name:      line.Name,
				Price:     line.Price,
				Quantity:  line.Quantity,
			})
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&history).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			for _, line := range lines {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", line.ProductID).
					UpdateColumn("sold", gorm.Expr("sold + ?", line.Quantity)).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process payment"})
			return
		}

		broadcastNewPayment(payment)

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
