package booking

import (
	"context"

	domain "github.com/homebarberid/booking-api/internal/domain/booking"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingDetail(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found")
	}
	return b, nil
}
