package booking

import (
	"context"
	"time"

	"github.com/homebarberid/booking-api/internal/audit"
	domain "github.com/homebarberid/booking-api/internal/domain/booking"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
	"github.com/homebarberid/booking-api/internal/pricing"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	// Acting identity, threaded explicitly; never read from globals.
	UserID uint

	BarberProfileID uint
	ServiceID       uint

	ScheduledTime time.Time
	Address       string
	Latitude      float64
	Longitude     float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	pricing *pricing.Engine
	audit   *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	engine *pricing.Engine,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		pricing: engine,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// 1. The acting identity must resolve to a customer profile; the
	//    booking references the profile id, not the user id.
	customer, err := uc.repo.GetCustomerProfileByUserID(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrValidation("customer_profile_missing")
	}

	// 2. Barber profile must exist and belong to a user with the admin
	//    (barber) role.
	barber, err := uc.repo.GetBarberProfile(ctx, in.BarberProfileID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_profile_not_found")
	}

	barberUser, err := uc.repo.GetUser(ctx, barber.UserID)
	if err != nil || barberUser.Role != models.RoleAdmin {
		return nil, httperr.ErrValidation("barber_role_invalid")
	}

	// 3. Service and base price.
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFound("service_not_found")
	}

	// 4. Price the booking. The engine rejects barbers without
	//    coordinates before any distance call is attempted.
	quote, err := uc.pricing.Compute(
		ctx,
		svc.Price,
		barber.Latitude,
		barber.Longitude,
		in.Latitude,
		in.Longitude,
	)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		CustomerProfileID: customer.ID,
		BarberProfileID:   barber.ID,
		ServiceID:         svc.ID,
		ScheduledTime:     in.ScheduledTime,
		Status:            string(domain.InitialStatus()),
		Address:           in.Address,
		Latitude:          in.Latitude,
		Longitude:         in.Longitude,
		DeliveryFee:       &quote.DeliveryFee,
		TotalPrice:        &quote.TotalPrice,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"delivery_fee": quote.DeliveryFee,
			"total_price":  quote.TotalPrice,
		},
	})

	return b, nil
}
