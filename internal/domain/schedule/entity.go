package schedule

import (
	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	return nil
}

func Complete(ap *models.Appointment) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	return nil
}

// ===============================
// Slot validation
// ===============================

// ValidateSlotWindow is checked before any TimeSlot is persisted.
func ValidateSlotWindow(startTime, endTime string) error {
	if endTime <= startTime {
		return httperr.Validation(
			"invalid_slot_window", "end_time",
			"end time must be after start time",
		)
	}
	return nil
}

// ValidateBlockRange is checked before any BlockedTime is persisted.
func ValidateBlockRange(b *models.BlockedTime) error {
	if !b.StartDatetime.Before(b.EndDatetime) {
		return httperr.Validation(
			"invalid_block_range", "start_datetime",
			"start must be before end",
		)
	}
	return nil
}
