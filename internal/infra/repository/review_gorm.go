package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/homebarberid/booking-api/internal/domain/review"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) GetCustomerProfileByUserID(
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

func (r *ReviewGormRepository) GetBookingForCustomer(
	ctx context.Context,
	bookingID uint,
	customerProfileID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_profile_id = ?", bookingID, customerProfileID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateReview runs the existence check and the insert in one
// transaction so concurrent submissions cannot both pass the check.
func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	review *models.Review,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Review{}).
			Where("booking_id = ?", review.BookingID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrConflict("review_already_exists")
		}

		return tx.Create(review).Error
	})
}

func (r *ReviewGormRepository) GetReviewForCustomer(
	ctx context.Context,
	reviewID uint,
	customerProfileID uint,
) (*models.Review, error) {

	var review models.Review
	if err := r.db.WithContext(ctx).
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("reviews.id = ? AND bookings.customer_profile_id = ?", reviewID, customerProfileID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewGormRepository) UpdateReview(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *ReviewGormRepository) DeleteReview(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Delete(review).Error
}

func (r *ReviewGormRepository) ListReviews(
	ctx context.Context,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Booking.CustomerProfile").
		Preload("Booking.BarberProfile").
		Preload("Booking.Service").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
