package schedule

import "github.com/louk-2005/AppointmentSite/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func InitialStatus() Status {
	return StatusPending
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// ===============================
// Transition rules
// ===============================

// CanConfirm: only pending appointments can be confirmed.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.Validation(
			"invalid_status_transition", "status",
			"only pending appointments can be confirmed",
		)
	}
	return nil
}

// CanCancel: terminal appointments cannot be cancelled.
func CanCancel(current Status) error {
	if current.IsTerminal() {
		return httperr.Validation(
			"invalid_status_transition", "status",
			"appointment can no longer be cancelled",
		)
	}
	return nil
}

// CanComplete: only confirmed appointments can be completed.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.Validation(
			"invalid_status_transition", "status",
			"only confirmed appointments can be completed",
		)
	}
	return nil
}
