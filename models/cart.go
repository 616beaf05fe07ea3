package models

import "time"

// CartItem is one user-product-quantity line in the shopping cart.
// Adding the same product twice creates two lines; lines are never merged.
type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	// CreatedAt is refreshed whenever the line's quantity is updated;
	// cart listings are ordered by it, newest first.
	CreatedAt time.Time `json:"created_at"`
}
