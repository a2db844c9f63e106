package model

import "time"

// Product is a catalog entry. Price is in cents.
type Product struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	ImageURL    string    `gorm:"column:image_url" json:"image_url"`
	IsActive    bool      `gorm:"not null;default:true" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
