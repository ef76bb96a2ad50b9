package models

import "time"

type Portfolio struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberProfileID uint          `json:"barber_profile_id"`
	BarberProfile   BarberProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber_profile"`

	// Object key in the image store; the public URL is derived on read.
	ImageKey    string `gorm:"size:255;not null" json:"image_key"`
	ImageURL    string `gorm:"-" json:"image_url"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
