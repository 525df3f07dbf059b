package models

import "time"

type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Name      string         `json:"name"`
	Role      int            `gorm:"default:0" json:"role"`
	Image     string         `json:"image"`
	Cart      []CartItem     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	History   []HistoryEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"history"`
	CreatedAt time.Time      `json:"created_at"`
}
