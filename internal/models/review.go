package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One review per booking, backed by a unique index so racing inserts
	// fail at the database even if the existence check is bypassed.
	BookingID uint    `gorm:"uniqueIndex;not null" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"booking"`

	Rating      int    `gorm:"not null" json:"rating"`
	Review      string `gorm:"size:1000" json:"review"`
	Description string `gorm:"size:1000" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
