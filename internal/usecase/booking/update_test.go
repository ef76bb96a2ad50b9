package booking

import (
	"context"
	"testing"
	"time"

	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
	"github.com/homebarberid/booking-api/internal/pricing"
)

// countingResolver records how often a distance was actually resolved.
type countingResolver struct {
	km    float64
	calls int
}

func (c *countingResolver) ResolveKm(ctx context.Context, oLat, oLon, dLat, dLon float64) float64 {
	c.calls++
	return c.km
}

func seededRepoWithBooking() *fakeRepo {
	repo := seededRepo()
	repo.bookings[1] = &models.Booking{
		ID:                1,
		CustomerProfileID: 4,
		BarberProfileID:   7,
		ServiceID:         3,
		ScheduledTime:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Status:            "pending",
		Latitude:          -6.3,
		Longitude:         106.9,
		DeliveryFee:       fptr(20000),
		TotalPrice:        fptr(70000),
	}
	return repo
}

func TestUpdateBookingScheduleOnlyKeepsCachedPrice(t *testing.T) {
	repo := seededRepoWithBooking()
	resolver := &countingResolver{km: 10}
	uc := NewUpdateBooking(repo, pricing.NewEngine(resolver))

	newTime := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)
	b, err := uc.Execute(context.Background(), UpdateBookingInput{
		UserID:        1,
		BookingID:     1,
		ScheduledTime: &newTime,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resolver.calls != 0 {
		t.Errorf("schedule-only edit must not resolve a distance")
	}
	if *b.DeliveryFee != 20000 || *b.TotalPrice != 70000 {
		t.Errorf("cached price must survive a schedule-only edit: fee=%f total=%f",
			*b.DeliveryFee, *b.TotalPrice)
	}
	if !b.ScheduledTime.Equal(newTime) {
		t.Errorf("scheduled time was not applied")
	}
}

func TestUpdateBookingSameCoordinatesKeepsCachedPrice(t *testing.T) {
	repo := seededRepoWithBooking()
	resolver := &countingResolver{km: 10}
	uc := NewUpdateBooking(repo, pricing.NewEngine(resolver))

	_, err := uc.Execute(context.Background(), UpdateBookingInput{
		UserID:    1,
		BookingID: 1,
		Latitude:  fptr(-6.3),
		Longitude: fptr(106.9),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resolver.calls != 0 {
		t.Errorf("resubmitting unchanged coordinates must not reprice")
	}
}

func TestUpdateBookingLongitudeChangeReprices(t *testing.T) {
	repo := seededRepoWithBooking()
	resolver := &countingResolver{km: 10}
	uc := NewUpdateBooking(repo, pricing.NewEngine(resolver))

	b, err := uc.Execute(context.Background(), UpdateBookingInput{
		UserID:    1,
		BookingID: 1,
		Longitude: fptr(107.0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resolver.calls != 1 {
		t.Fatalf("coordinate change must resolve a fresh distance, calls=%d", resolver.calls)
	}
	if *b.DeliveryFee != 50000 {
		t.Errorf("delivery fee = %f, want 50000", *b.DeliveryFee)
	}
	if *b.TotalPrice != 100000 {
		t.Errorf("total price = %f, want 100000", *b.TotalPrice)
	}
	if b.Longitude != 107.0 {
		t.Errorf("longitude was not applied")
	}
}

func TestUpdateBookingServiceChangeReprices(t *testing.T) {
	repo := seededRepoWithBooking()
	repo.services[8] = &models.Service{ID: 8, BarberProfileID: 7, Price: 90000}
	resolver := &countingResolver{km: 4}
	uc := NewUpdateBooking(repo, pricing.NewEngine(resolver))

	newService := uint(8)
	b, err := uc.Execute(context.Background(), UpdateBookingInput{
		UserID:    1,
		BookingID: 1,
		ServiceID: &newService,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *b.TotalPrice != 110000 {
		t.Errorf("total price = %f, want 110000 (90000 + 20000)", *b.TotalPrice)
	}
	if b.ServiceID != 8 {
		t.Errorf("service id was not applied")
	}
}

func TestUpdateBookingRejectsUnknownStatus(t *testing.T) {
	repo := seededRepoWithBooking()
	uc := NewUpdateBooking(repo, pricing.NewEngine(&countingResolver{km: 4}))

	bad := "confirmed"
	_, err := uc.Execute(context.Background(), UpdateBookingInput{
		UserID:    1,
		BookingID: 1,
		Status:    &bad,
	})
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}

func TestUpdateBookingNotFound(t *testing.T) {
	uc := NewUpdateBooking(newFakeRepo(), pricing.NewEngine(&countingResolver{km: 4}))

	_, err := uc.Execute(context.Background(), UpdateBookingInput{BookingID: 42})
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
}

func TestUpdateBookingForeignUserRejected(t *testing.T) {
	repo := seededRepoWithBooking()
	repo.users[5] = &models.User{ID: 5, Role: models.RolePelanggan}
	repo.customers[5] = &models.CustomerProfile{ID: 6, UserID: 5}
	uc := NewUpdateBooking(repo, pricing.NewEngine(&countingResolver{km: 4}))

	addr := "Jl. Lain"
	_, err := uc.Execute(context.Background(), UpdateBookingInput{
		UserID:    5,
		BookingID: 1,
		Address:   &addr,
	})
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("foreign booking must look missing, got %v", err)
	}
}

func TestCancelBooking(t *testing.T) {
	repo := seededRepoWithBooking()
	uc := NewCancelBooking(repo, testDispatcher())

	b, err := uc.Execute(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != "cancelled" {
		t.Fatalf("status = %q, want cancelled", b.Status)
	}
}

func TestCancelCompletedBookingConflicts(t *testing.T) {
	repo := seededRepoWithBooking()
	repo.bookings[1].Status = "completed"
	uc := NewCancelBooking(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 1, 1)
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if repo.bookings[1].Status != "completed" {
		t.Fatalf("terminal booking must not be mutated")
	}
}
