package models

import "time"

// HistoryEntry is one purchase line appended to a user after checkout.
type HistoryEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	ProductID   uint      `json:"product_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	PurchasedAt time.Time `json:"purchased_at"`
	PaymentID   string    `json:"payment_id"`
}

// Payment is an immutable snapshot of one checkout: who bought, and what.
type Payment struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	PaymentID string        `gorm:"uniqueIndex" json:"payment_id"`
	UserID    uint          `gorm:"index" json:"user_id"`
	UserEmail string        `json:"user_email"`
	UserName  string        `json:"user_name"`
	Items     []PaymentItem `gorm:"foreignKey:PaymentRef;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time     `json:"created_at"`
}

type PaymentItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	PaymentRef uint    `gorm:"index" json:"payment_ref"`
	ProductID  uint    `json:"product_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}
