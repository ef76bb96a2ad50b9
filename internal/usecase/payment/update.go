package payment

import (
	"context"

	domain "github.com/homebarberid/booking-api/internal/domain/payment"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
	"github.com/homebarberid/booking-api/internal/timezone"
)

type UpdatePaymentInput struct {
	PaymentID uint

	Amount *float64
	Status *string
	Method *string
}

type UpdatePayment struct {
	repo domain.Repository
}

func NewUpdatePayment(repo domain.Repository) *UpdatePayment {
	return &UpdatePayment{repo: repo}
}

// Execute edits an existing payment. Unlike creation, the amount is not
// re-validated against the booking total; this path is deliberately
// looser. Flipping to paid still stamps paid_at and promotes the booking
// in the same transaction.
func (uc *UpdatePayment) Execute(
	ctx context.Context,
	in UpdatePaymentInput,
) (*models.Payment, error) {

	p, err := uc.repo.GetPayment(ctx, in.PaymentID)
	if err != nil {
		return nil, httperr.ErrNotFound("payment_not_found")
	}

	wasPaid := p.Status == models.PaymentStatusPaid

	if in.Amount != nil {
		p.Amount = *in.Amount
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Method != nil {
		p.Method = *in.Method
	}

	becomesPaid := p.Status == models.PaymentStatusPaid
	if becomesPaid && (p.PaidAt == nil || !wasPaid) {
		now := timezone.Now()
		p.PaidAt = &now
	}

	if err := uc.repo.SavePayment(ctx, p, becomesPaid && !wasPaid); err != nil {
		return nil, err
	}

	return p, nil
}
