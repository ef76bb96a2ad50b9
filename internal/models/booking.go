package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerProfileID uint            `json:"customer_profile_id"`
	CustomerProfile   CustomerProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer_profile"`

	BarberProfileID uint          `json:"barber_profile_id"`
	BarberProfile   BarberProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber_profile"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	ScheduledTime time.Time `json:"scheduled_time"`
	Status        string    `gorm:"size:20;default:'pending'" json:"status"`

	Address   string  `gorm:"size:255;not null" json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// DeliveryFee and TotalPrice are cached at computation time; they are
	// not re-derived on read and only recomputed when a pricing input
	// changes.
	DeliveryFee *float64 `json:"delivery_fee"`
	TotalPrice  *float64 `json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
