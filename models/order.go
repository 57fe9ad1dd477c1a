package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusOrdered   = "Ordered"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// Order is the snapshot of one purchased cart line, written when the
// gateway confirms payment. Product name and price are copied so later
// catalog edits do not rewrite order history.
type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PublicID      string    `gorm:"uniqueIndex" json:"order_id"`
	UserID        uint      `json:"user_id"`
	ProductID     uint      `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Price         float64   `json:"price"`
	Quantity      int       `json:"quantity"`
	ShippingName  string    `json:"shipping_name"`
	ShippingPhone string    `json:"shipping_phone"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
