package models

import "time"

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodQris     = "qris"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"booking"`

	Amount float64 `gorm:"not null" json:"amount"`
	Status string  `gorm:"size:20;default:'pending'" json:"status"`
	Method string  `gorm:"size:20;not null" json:"method"`

	PaidAt *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
