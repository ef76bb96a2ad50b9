package booking

import "github.com/homebarberid/booking-api/internal/httperr"

// Canonical booking status vocabulary. The source systems drifted across
// three variants; this closed set is the one every validator uses, and
// any other value is rejected outright.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusPaid       Status = "paid"
)

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus validates a caller-supplied status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled, StatusPaid:
		return Status(s), nil
	}
	return "", httperr.ErrValidation("invalid_status")
}

// CanCancel rejects cancellation of terminal bookings with a conflict.
func CanCancel(current Status) error {
	if current == StatusCompleted || current == StatusCancelled {
		return httperr.ErrConflict("booking_already_finalized")
	}
	return nil
}
