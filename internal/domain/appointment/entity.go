package appointment

import (
	"time"

	"github.com/nerobarber/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusConfirmed); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCompleted); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Apply advances to an arbitrary target, guarding the transition.
func Apply(ap *models.Appointment, to Status, now time.Time) error {
	switch to {
	case StatusConfirmed:
		return Confirm(ap, now)
	case StatusCompleted:
		return Complete(ap, now)
	default:
		return CanTransition(Status(ap.Status), to)
	}
}
