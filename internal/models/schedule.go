package models

import "time"

// Schedule (jadwal) is a barber's declared weekly availability window.
// It is informational; no overlap detection is done against bookings.
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberProfileID uint          `json:"barber_profile_id"`
	BarberProfile   BarberProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber_profile"`

	Day            string `gorm:"size:20;not null" json:"day"`
	AvailableFrom  string `gorm:"size:5;not null" json:"available_from"`
	AvailableUntil string `gorm:"size:5;not null" json:"available_until"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
