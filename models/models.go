package models

import (
	"gorm.io/gorm"
)

// User represents a storefront customer. The shipping fields are the
// contact snapshot sent to the payment gateway and copied onto orders.
type User struct {
	gorm.Model
	Username      string `gorm:"uniqueIndex;not null" json:"username"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Password      string `json:"-"`
	Phone         string `json:"phone"`
	ShippingName  string `json:"shipping_name"`
	ShippingPhone string `json:"shipping_phone"`
	IsBlocked     bool   `json:"is_blocked"`
	IsAdmin       bool   `json:"is_admin" gorm:"default:false"`

	CartItems []CartItem       `json:"cart,omitempty" gorm:"foreignKey:UserID"`
	Orders    []Order          `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	Payments  []PaymentSummary `json:"payments,omitempty" gorm:"foreignKey:UserID"`
}

// Product represents a catalog entry
type Product struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
}

type CartItem struct {
	gorm.Model
	UserID    uint    `json:"user_id"`
	User      User    `gorm:"foreignKey:UserID" json:"-"`
	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `json:"quantity"`
}
