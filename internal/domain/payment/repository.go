package payment

import (
	"context"

	"github.com/homebarberid/booking-api/internal/models"
)

type Repository interface {
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetPayment(
		ctx context.Context,
		id uint,
	) (*models.Payment, error)

	// CreatePayment persists p; when markBookingPaid is set, the booking
	// status flip to "paid" happens in the same database transaction. A
	// paid payment must never exist against a booking not reflecting it.
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
		markBookingPaid bool,
	) error

	SavePayment(
		ctx context.Context,
		p *models.Payment,
		markBookingPaid bool,
	) error

	DeletePayment(
		ctx context.Context,
		id uint,
	) error

	ListPayments(
		ctx context.Context,
	) ([]models.Payment, error)

	ListPaymentsByCustomer(
		ctx context.Context,
		customerProfileID uint,
	) ([]models.Payment, error)

	GetCustomerProfileByUserID(
		ctx context.Context,
		userID uint,
	) (*models.CustomerProfile, error)
}
