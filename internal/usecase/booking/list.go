package booking

import (
	"context"

	domain "github.com/homebarberid/booking-api/internal/domain/booking"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
)

type ListMyBookings struct {
	repo domain.Repository
}

func NewListMyBookings(repo domain.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

func (uc *ListMyBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	customer, err := uc.repo.GetCustomerProfileByUserID(ctx, userID)
	if err != nil {
		return nil, httperr.ErrValidation("customer_profile_missing")
	}

	return uc.repo.ListBookingsByCustomer(ctx, customer.ID)
}

type ListAllBookings struct {
	repo domain.Repository
}

func NewListAllBookings(repo domain.Repository) *ListAllBookings {
	return &ListAllBookings{repo: repo}
}

func (uc *ListAllBookings) Execute(ctx context.Context) ([]models.Booking, error) {
	return uc.repo.ListBookings(ctx)
}
