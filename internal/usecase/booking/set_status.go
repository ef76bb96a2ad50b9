package booking

import (
	"context"

	"github.com/homebarberid/booking-api/internal/audit"
	domain "github.com/homebarberid/booking-api/internal/domain/booking"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
)

type SetBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetBookingStatus {
	return &SetBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetBookingStatus) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
	status string,
) (*models.Booking, error) {

	// Validate the value before touching the store, so unknown statuses
	// never reach a not-found path first.
	if _, err := domain.ParseStatus(status); err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found")
	}

	if err := domain.SetStatus(b, status); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"status": status},
	})

	return b, nil
}
