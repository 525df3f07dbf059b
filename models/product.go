package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:30;not null" json:"title"`
	Description string    `json:"description"`
	Price       float64   `gorm:"default:0" json:"price"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	Sold        int       `gorm:"default:0" json:"sold"`
	Category    int       `gorm:"default:1" json:"category"`
	Views       int       `gorm:"default:0" json:"views"`
	WriterID    uint      `json:"writer_id"`
	Writer      *User     `gorm:"foreignKey:WriterID" json:"writer,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
