package models

import (
	"time"
)

// Payment is the durable record of one completed gateway transaction.
// The unique index on MerchantTransactionID is what makes duplicate
// status callbacks safe: a second insert for the same transaction fails
// inside the fulfilment transaction and rolls the duplicate back.
type Payment struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	UserID                uint      `json:"user_id"`
	MerchantID            string    `json:"merchant_id"`
	MerchantTransactionID string    `gorm:"uniqueIndex;not null" json:"merchant_transaction_id"`
	Amount                float64   `json:"amount"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone"`
	Body                  string    `gorm:"type:jsonb" json:"body"`     // raw gateway status response
	Products              string    `gorm:"type:jsonb" json:"products"` // purchased product snapshot
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// PaymentSummary is the short payment entry appended to a user's history
// when an order is fulfilled.
type PaymentSummary struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	UserID                uint      `json:"user_id"`
	PaymentID             uint      `json:"payment_id"`
	MerchantID            string    `json:"merchant_id"`
	MerchantTransactionID string    `json:"merchant_transaction_id"`
	Amount                float64   `json:"amount"`
	CreatedAt             time.Time `json:"created_at"`
}
