package booking

import (
	"context"

	"github.com/homebarberid/booking-api/internal/models"
)

type Repository interface {
	// -------- Identity / profiles --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetCustomerProfileByUserID(
		ctx context.Context,
		userID uint,
	) (*models.CustomerProfile, error)

	GetBarberProfile(
		ctx context.Context,
		id uint,
	) (*models.BarberProfile, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Booking --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingDetail(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	ListBookingsByCustomer(
		ctx context.Context,
		customerProfileID uint,
	) ([]models.Booking, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)
}
