package payment

import (
	"context"

	"github.com/homebarberid/booking-api/internal/audit"
	domain "github.com/homebarberid/booking-api/internal/domain/payment"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
	"github.com/homebarberid/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RecordPaymentInput struct {
	UserID uint

	BookingID uint
	Amount    float64
	Status    string
	Method    string
}

// ======================================================
// USE CASE
// ======================================================

type RecordPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRecordPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RecordPayment {
	return &RecordPayment{
		repo:  repo,
		audit: audit,
	}
}

// Execute reconciles a manually asserted payment against the booking's
// cached total. A "paid" payment and the booking's promotion to paid are
// written as one transaction; one must never be observable without the
// other.
func (uc *RecordPayment) Execute(
	ctx context.Context,
	in RecordPaymentInput,
) (*models.Payment, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found")
	}

	paid := in.Status == models.PaymentStatusPaid

	if paid {
		// A paid booking without a computed total is corrupted state, not
		// a caller mistake.
		if b.TotalPrice == nil {
			return nil, httperr.ErrFatal("booking_total_missing")
		}

		// Floor check only; overpayment is accepted silently.
		if in.Amount < *b.TotalPrice {
			return nil, httperr.ErrValidation("insufficient_amount")
		}
	}

	p := &models.Payment{
		BookingID: b.ID,
		Amount:    in.Amount,
		Status:    in.Status,
		Method:    in.Method,
	}
	if paid {
		now := timezone.Now()
		p.PaidAt = &now
	}

	if err := uc.repo.CreatePayment(ctx, p, paid); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "payment_recorded",
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: map[string]any{
			"booking_id": b.ID,
			"amount":     in.Amount,
			"status":     in.Status,
		},
	})

	return p, nil
}
