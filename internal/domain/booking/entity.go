package booking

import "github.com/homebarberid/booking-api/internal/models"

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	return nil
}

// SetStatus applies a caller-supplied status. The value is validated
// against the canonical set; no transition guard beyond cancellation is
// enforced on this path.
func SetStatus(b *models.Booking, status string) error {
	st, err := ParseStatus(status)
	if err != nil {
		return err
	}

	b.Status = string(st)
	return nil
}
