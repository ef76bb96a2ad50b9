package repository

import (
	"context"

	"gorm.io/gorm"

	bookingdomain "github.com/homebarberid/booking-api/internal/domain/booking"
	domain "github.com/homebarberid/booking-api/internal/domain/payment"
	"github.com/homebarberid/booking-api/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PaymentGormRepository) GetPayment(
	ctx context.Context,
	id uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePayment writes the payment row and, for paid payments, promotes
// the booking in the same transaction. A reader must never observe a
// paid payment against a booking still marked otherwise.
func (r *PaymentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
	markBookingPaid bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		if markBookingPaid {
			if err := tx.Model(&models.Booking{}).
				Where("id = ?", p.BookingID).
				Update("status", string(bookingdomain.StatusPaid)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *PaymentGormRepository) SavePayment(
	ctx context.Context,
	p *models.Payment,
	markBookingPaid bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}

		if markBookingPaid {
			if err := tx.Model(&models.Booking{}).
				Where("id = ?", p.BookingID).
				Update("status", string(bookingdomain.StatusPaid)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *PaymentGormRepository) DeletePayment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Payment{}, id).Error
}

func (r *PaymentGormRepository) ListPayments(
	ctx context.Context,
) ([]models.Payment, error) {

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Booking").
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentGormRepository) ListPaymentsByCustomer(
	ctx context.Context,
	customerProfileID uint,
) ([]models.Payment, error) {

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Booking.Service").
		Preload("Booking.BarberProfile").
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Where("bookings.customer_profile_id = ?", customerProfileID).
		Order("payments.created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentGormRepository) GetCustomerProfileByUserID(
	ctx context.Context,
	userID uint,
) (*models.CustomerProfile, error) {

	var p models.CustomerProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Compile-time check
var _ domain.Repository = (*PaymentGormRepository)(nil)
