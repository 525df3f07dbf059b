package models

import "time"

// CartItem is one line of a user's cart. The cart handler keeps at most one
// row per (UserID, ProductID) by incrementing the quantity on duplicates.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
