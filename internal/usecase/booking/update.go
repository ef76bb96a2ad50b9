package booking

import (
	"context"
	"time"

	domain "github.com/homebarberid/booking-api/internal/domain/booking"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
	"github.com/homebarberid/booking-api/internal/pricing"
)

// UpdateBookingInput is a partial field set; nil means "leave as is".
type UpdateBookingInput struct {
	UserID    uint
	BookingID uint

	ServiceID       *uint
	BarberProfileID *uint
	ScheduledTime   *time.Time
	Status          *string
	Address         *string
	Latitude        *float64
	Longitude       *float64
}

type UpdateBooking struct {
	repo    domain.Repository
	pricing *pricing.Engine
}

func NewUpdateBooking(
	repo domain.Repository,
	engine *pricing.Engine,
) *UpdateBooking {
	return &UpdateBooking{
		repo:    repo,
		pricing: engine,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found")
	}

	customer, err := uc.repo.GetCustomerProfileByUserID(ctx, in.UserID)
	if err != nil || b.CustomerProfileID != customer.ID {
		return nil, httperr.ErrNotFound("booking_not_found")
	}

	if in.Status != nil {
		if _, err := domain.ParseStatus(*in.Status); err != nil {
			return nil, err
		}
	}

	// Repricing is a dirty check over the four pricing inputs. Edits to
	// scheduled time, address or status leave the cached fee/total alone.
	changes := pricing.ChangeSet{
		ServiceID:       in.ServiceID,
		BarberProfileID: in.BarberProfileID,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
	}

	if changes.RequiresReprice(b) {
		svc, err := uc.repo.GetService(ctx, changes.EffectiveServiceID(b))
		if err != nil {
			return nil, httperr.ErrNotFound("service_not_found")
		}

		barber, err := uc.repo.GetBarberProfile(ctx, changes.EffectiveBarberProfileID(b))
		if err != nil {
			return nil, httperr.ErrNotFound("barber_profile_not_found")
		}

		lat, lon := changes.EffectiveCoordinates(b)

		quote, err := uc.pricing.Compute(
			ctx,
			svc.Price,
			barber.Latitude,
			barber.Longitude,
			lat,
			lon,
		)
		if err != nil {
			return nil, err
		}

		b.DeliveryFee = &quote.DeliveryFee
		b.TotalPrice = &quote.TotalPrice
	}

	if in.ServiceID != nil {
		b.ServiceID = *in.ServiceID
	}
	if in.BarberProfileID != nil {
		b.BarberProfileID = *in.BarberProfileID
	}
	if in.ScheduledTime != nil {
		b.ScheduledTime = *in.ScheduledTime
	}
	if in.Status != nil {
		b.Status = *in.Status
	}
	if in.Address != nil {
		b.Address = *in.Address
	}
	if in.Latitude != nil {
		b.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		b.Longitude = *in.Longitude
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
