package payment

import (
	"context"
	"testing"

	"github.com/homebarberid/booking-api/internal/audit"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
)

// fakeRepo is an in-memory Repository for use-case tests.
type fakeRepo struct {
	booking *models.Booking
	payment *models.Payment

	created         *models.Payment
	markBookingPaid bool
	saved           *models.Payment
	savedMarkPaid   bool
}

func (f *fakeRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, httperr.ErrNotFound("booking_not_found")
	}
	return f.booking, nil
}

func (f *fakeRepo) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	if f.payment == nil || f.payment.ID != id {
		return nil, httperr.ErrNotFound("payment_not_found")
	}
	return f.payment, nil
}

func (f *fakeRepo) CreatePayment(ctx context.Context, p *models.Payment, markBookingPaid bool) error {
	p.ID = 1
	f.created = p
	f.markBookingPaid = markBookingPaid
	return nil
}

func (f *fakeRepo) SavePayment(ctx context.Context, p *models.Payment, markBookingPaid bool) error {
	f.saved = p
	f.savedMarkPaid = markBookingPaid
	return nil
}

func (f *fakeRepo) DeletePayment(ctx context.Context, id uint) error { return nil }

func (f *fakeRepo) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return nil, nil
}

func (f *fakeRepo) ListPaymentsByCustomer(ctx context.Context, customerProfileID uint) ([]models.Payment, error) {
	return nil, nil
}

func (f *fakeRepo) GetCustomerProfileByUserID(ctx context.Context, userID uint) (*models.CustomerProfile, error) {
	return nil, httperr.ErrNotFound("customer_profile_missing")
}

type nopSink struct{}

func (nopSink) Log(userID *uint, action, entity string, entityID *uint, metadata any) error {
	return nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{})
}

func totalPtr(v float64) *float64 { return &v }

func bookingWithTotal(total float64) *models.Booking {
	return &models.Booking{ID: 10, Status: "pending", TotalPrice: totalPtr(total)}
}

func TestRecordPaymentBookingNotFound(t *testing.T) {
	uc := NewRecordPayment(&fakeRepo{}, testDispatcher())

	_, err := uc.Execute(context.Background(), RecordPaymentInput{
		UserID:    1,
		BookingID: 99,
		Amount:    70000,
		Status:    models.PaymentStatusPaid,
		Method:    models.PaymentMethodCash,
	})
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
}

func TestRecordPaymentRejectsInsufficientAmount(t *testing.T) {
	repo := &fakeRepo{booking: bookingWithTotal(70000)}
	uc := NewRecordPayment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), RecordPaymentInput{
		UserID:    1,
		BookingID: 10,
		Amount:    69999,
		Status:    models.PaymentStatusPaid,
		Method:    models.PaymentMethodTransfer,
	})
	if !httperr.IsBusiness(err, "insufficient_amount") {
		t.Fatalf("expected insufficient_amount, got %v", err)
	}
	if repo.created != nil {
		t.Fatalf("rejected payment must not be persisted")
	}
}

func TestRecordPaymentExactAmountMarksBookingPaid(t *testing.T) {
	repo := &fakeRepo{booking: bookingWithTotal(70000)}
	uc := NewRecordPayment(repo, testDispatcher())

	p, err := uc.Execute(context.Background(), RecordPaymentInput{
		UserID:    1,
		BookingID: 10,
		Amount:    70000,
		Status:    models.PaymentStatusPaid,
		Method:    models.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repo.markBookingPaid {
		t.Errorf("paid payment must flip the booking in the same write")
	}
	if p.PaidAt == nil {
		t.Errorf("paid payment must carry paid_at")
	}
}

func TestRecordPaymentAcceptsOverpayment(t *testing.T) {
	repo := &fakeRepo{booking: bookingWithTotal(70000)}
	uc := NewRecordPayment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), RecordPaymentInput{
		UserID:    1,
		BookingID: 10,
		Amount:    100000,
		Status:    models.PaymentStatusPaid,
		Method:    models.PaymentMethodQris,
	})
	if err != nil {
		t.Fatalf("overpayment must be accepted, got %v", err)
	}
}

func TestRecordPaymentPendingSkipsAmountCheck(t *testing.T) {
	repo := &fakeRepo{booking: bookingWithTotal(70000)}
	uc := NewRecordPayment(repo, testDispatcher())

	p, err := uc.Execute(context.Background(), RecordPaymentInput{
		UserID:    1,
		BookingID: 10,
		Amount:    5000,
		Status:    models.PaymentStatusPending,
		Method:    models.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.markBookingPaid {
		t.Errorf("pending payment must not flip the booking")
	}
	if p.PaidAt != nil {
		t.Errorf("pending payment must not carry paid_at")
	}
}

func TestRecordPaymentMissingTotalIsFatal(t *testing.T) {
	repo := &fakeRepo{booking: &models.Booking{ID: 10, Status: "pending"}}
	uc := NewRecordPayment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), RecordPaymentInput{
		UserID:    1,
		BookingID: 10,
		Amount:    70000,
		Status:    models.PaymentStatusPaid,
		Method:    models.PaymentMethodCash,
	})
	if !httperr.IsKind(err, httperr.KindFatal) {
		t.Fatalf("expected fatal error for missing total, got %v", err)
	}
}
