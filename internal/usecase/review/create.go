package review

import (
	"context"

	"github.com/homebarberid/booking-api/internal/audit"
	domain "github.com/homebarberid/booking-api/internal/domain/review"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
)

type CreateReviewInput struct {
	UserID    uint
	BookingID uint

	Rating      int
	Review      string
	Description string
}

type CreateReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReview {
	return &CreateReview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrValidation("invalid_rating")
	}

	customer, err := uc.repo.GetCustomerProfileByUserID(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrValidation("customer_profile_missing")
	}

	// Only the booking's own customer may review it. No gating on the
	// booking status.
	b, err := uc.repo.GetBookingForCustomer(ctx, in.BookingID, customer.ID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found")
	}

	r := &models.Review{
		BookingID:   b.ID,
		Rating:      in.Rating,
		Review:      in.Review,
		Description: in.Description,
	}

	// The repository checks for an existing review and inserts inside one
	// transaction; the unique index catches whatever races past it.
	if err := uc.repo.CreateReview(ctx, r); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrConflict("review_already_exists")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &r.ID,
		Metadata: map[string]any{"booking_id": b.ID, "rating": in.Rating},
	})

	return r, nil
}
