package models

import "time"

// BarberProfile is the provider-side profile. Its coordinates are the
// origin for delivery fee computation; bookings against a barber whose
// location is unset are rejected.
type BarberProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasLocation reports whether both coordinates are set.
func (p *BarberProfile) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}
