package models

import "time"

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;index" json:"user_id"`

	// Snapshot of the catalog entry at booking time. The price keeps the
	// formatted BRL string the catalog carries ("R$ 150,00").
	ServiceID    string `gorm:"size:100" json:"service_id"`
	ServiceName  string `gorm:"size:100;not null" json:"service_name"`
	ServicePrice string `gorm:"size:20" json:"service_price"`

	Date string `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null" json:"time"`  // HH:mm slot

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	VehicleModel string `gorm:"size:100;not null" json:"vehicle_model"`
	VehiclePlate string `gorm:"size:10;not null" json:"vehicle_plate"`
	Notes        string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
