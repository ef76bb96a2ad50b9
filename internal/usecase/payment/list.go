package payment

import (
	"context"

	domain "github.com/homebarberid/booking-api/internal/domain/payment"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
)

type GetPayment struct {
	repo domain.Repository
}

func NewGetPayment(repo domain.Repository) *GetPayment {
	return &GetPayment{repo: repo}
}

func (uc *GetPayment) Execute(
	ctx context.Context,
	paymentID uint,
) (*models.Payment, error) {

	p, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, httperr.ErrNotFound("payment_not_found")
	}
	return p, nil
}

type ListAllPayments struct {
	repo domain.Repository
}

func NewListAllPayments(repo domain.Repository) *ListAllPayments {
	return &ListAllPayments{repo: repo}
}

func (uc *ListAllPayments) Execute(ctx context.Context) ([]models.Payment, error) {
	return uc.repo.ListPayments(ctx)
}

type ListMyPayments struct {
	repo domain.Repository
}

func NewListMyPayments(repo domain.Repository) *ListMyPayments {
	return &ListMyPayments{repo: repo}
}

func (uc *ListMyPayments) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Payment, error) {

	customer, err := uc.repo.GetCustomerProfileByUserID(ctx, userID)
	if err != nil {
		return nil, httperr.ErrNotFound("customer_profile_missing")
	}

	return uc.repo.ListPaymentsByCustomer(ctx, customer.ID)
}

type DeletePayment struct {
	repo domain.Repository
}

func NewDeletePayment(repo domain.Repository) *DeletePayment {
	return &DeletePayment{repo: repo}
}

func (uc *DeletePayment) Execute(ctx context.Context, paymentID uint) error {
	if _, err := uc.repo.GetPayment(ctx, paymentID); err != nil {
		return httperr.ErrNotFound("payment_not_found")
	}
	return uc.repo.DeletePayment(ctx, paymentID)
}
