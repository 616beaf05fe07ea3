package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef   string          `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID     uint            `gorm:"index;not null" json:"user_id"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
}

// OrderItem is an immutable snapshot of a cart line taken at placement.
// Price is the product's unit price at that moment; later price changes
// never touch it.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Product   Product         `json:"product"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
}
