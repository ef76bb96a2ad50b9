package booking

import (
	"context"

	"github.com/homebarberid/booking-api/internal/audit"
	domain "github.com/homebarberid/booking-api/internal/domain/booking"
	"github.com/homebarberid/booking-api/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) error {

	// Hard delete; FK cascade removes payments and reviews hanging off
	// the booking.
	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return httperr.ErrNotFound("booking_not_found")
	}

	customer, err := uc.repo.GetCustomerProfileByUserID(ctx, userID)
	if err != nil || b.CustomerProfileID != customer.ID {
		return httperr.ErrNotFound("booking_not_found")
	}

	if err := uc.repo.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}
