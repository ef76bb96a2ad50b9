package review

import (
	"context"

	"github.com/homebarberid/booking-api/internal/models"
)

type Repository interface {
	GetCustomerProfileByUserID(
		ctx context.Context,
		userID uint,
	) (*models.CustomerProfile, error)

	GetBookingForCustomer(
		ctx context.Context,
		bookingID uint,
		customerProfileID uint,
	) (*models.Booking, error)

	// CreateReview inserts r after checking no review exists for the
	// booking yet, both inside one transaction.
	CreateReview(
		ctx context.Context,
		r *models.Review,
	) error

	GetReviewForCustomer(
		ctx context.Context,
		reviewID uint,
		customerProfileID uint,
	) (*models.Review, error)

	UpdateReview(
		ctx context.Context,
		r *models.Review,
	) error

	DeleteReview(
		ctx context.Context,
		r *models.Review,
	) error

	ListReviews(
		ctx context.Context,
	) ([]models.Review, error)
}
