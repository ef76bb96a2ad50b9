package booking

import (
	"testing"

	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
)

func TestParseStatusAcceptsCanonicalValues(t *testing.T) {
	for _, s := range []string{"pending", "in_progress", "completed", "cancelled", "paid"} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q) rejected a canonical value: %v", s, err)
		}
	}
}

func TestParseStatusRejectsUnknownValues(t *testing.T) {
	// "confirmed" existed in a legacy dataset and is deliberately not
	// part of the canonical set.
	for _, s := range []string{"confirmed", "PENDING", "done", ""} {
		if _, err := ParseStatus(s); !httperr.IsBusiness(err, "invalid_status") {
			t.Errorf("ParseStatus(%q) = %v, want invalid_status", s, err)
		}
	}
}

func TestCancel(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}
	if err := Cancel(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != string(StatusCancelled) {
		t.Fatalf("status = %q, want cancelled", b.Status)
	}
}

func TestCancelRejectsTerminalStatuses(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled} {
		b := &models.Booking{Status: string(s)}
		err := Cancel(b)
		if !httperr.IsBusiness(err, "booking_already_finalized") {
			t.Errorf("Cancel on %q = %v, want booking_already_finalized", s, err)
		}
		if !httperr.IsKind(err, httperr.KindConflict) {
			t.Errorf("Cancel on %q must be a conflict", s)
		}
	}
}

func TestCancelAllowsPaid(t *testing.T) {
	// Paid is not terminal; a paid booking can still be called off.
	b := &models.Booking{Status: string(StatusPaid)}
	if err := Cancel(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetStatus(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}

	if err := SetStatus(b, "in_progress"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != "in_progress" {
		t.Fatalf("status = %q, want in_progress", b.Status)
	}

	if err := SetStatus(b, "confirmed"); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
	if b.Status != "in_progress" {
		t.Fatalf("rejected value must not mutate the booking")
	}
}
