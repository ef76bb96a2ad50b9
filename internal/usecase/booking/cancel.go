package booking

import (
	"context"

	"github.com/homebarberid/booking-api/internal/audit"
	domain "github.com/homebarberid/booking-api/internal/domain/booking"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found")
	}

	// Only the owning customer may cancel; a foreign booking looks like
	// a missing one.
	customer, err := uc.repo.GetCustomerProfileByUserID(ctx, userID)
	if err != nil || b.CustomerProfileID != customer.ID {
		return nil, httperr.ErrNotFound("booking_not_found")
	}

	if err := domain.Cancel(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
