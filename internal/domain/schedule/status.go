package schedule

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// StatusFromBackend maps a backend status, case-insensitively. Unknown
// values are treated as pending.
func StatusFromBackend(raw string) Status {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CONFIRMED", "COMPLETED":
		return StatusCompleted
	case "CANCELED", "CANCELLED":
		return StatusCanceled
	case "PENDING", "SCHEDULED":
		return StatusPending
	default:
		return StatusPending
	}
}

// DeriveStatus is the display status of a booking on date as of now.
// A booking that is still open once its end time has passed is shown as
// completed; the backend has no transition for that.
func DeriveStatus(b models.Booking, date time.Time, now time.Time) Status {
	status := StatusFromBackend(b.Status)
	if status == StatusCanceled || status == StatusCompleted {
		return status
	}

	end, err := At(date, b.ScheduledEnd)
	if err != nil {
		return status
	}
	if end.Before(now) {
		return StatusCompleted
	}
	return status
}
