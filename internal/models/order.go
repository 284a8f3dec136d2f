package models

import (
	"time"

	"gorm.io/datatypes"
)

type Order struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;index" json:"user_id"`

	// Weak reference: an order may exist without a booking and vice versa.
	BookingID *string `gorm:"type:uuid" json:"booking_id"`

	TotalAmount float64 `json:"total_amount"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	PaymentMethod string `gorm:"size:20;not null" json:"payment_method"`

	PaymentDetails datatypes.JSON `json:"payment_details"`

	CreatedAt time.Time `json:"created_at"`
}
