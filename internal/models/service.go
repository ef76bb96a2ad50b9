package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberProfileID uint          `json:"barber_profile_id"`
	BarberProfile   BarberProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber_profile"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
