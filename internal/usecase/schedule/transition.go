package schedule

import (
	"context"
	"time"

	"github.com/louk-2005/AppointmentSite/internal/audit"
	"github.com/louk-2005/AppointmentSite/internal/cache"
	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/models"
)

// TransitionAppointment applies one status transition (confirm, cancel
// or complete) to a single appointment. Cancellation releases the
// slot's capacity inside the same transaction.
type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

type TransitionAction string

const (
	ActionConfirm  TransitionAction = "confirm"
	ActionCancel   TransitionAction = "cancel"
	ActionComplete TransitionAction = "complete"
)

func (uc *TransitionAppointment) Confirm(
	ctx context.Context,
	principal domain.Principal,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.execute(ctx, principal, appointmentID, ActionConfirm)
}

func (uc *TransitionAppointment) Cancel(
	ctx context.Context,
	principal domain.Principal,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.execute(ctx, principal, appointmentID, ActionCancel)
}

func (uc *TransitionAppointment) Complete(
	ctx context.Context,
	principal domain.Principal,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.execute(ctx, principal, appointmentID, ActionComplete)
}

func (uc *TransitionAppointment) execute(
	ctx context.Context,
	principal domain.Principal,
	appointmentID uint,
	action TransitionAction,
) (*models.Appointment, error) {

	var ap *models.Appointment
	var salonID uint
	var date time.Time

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}

		// Customers may only touch their own bookings, and only to
		// cancel them. Staff and manager scoping happened at the edge.
		if principal.Role == models.RoleCustomer {
			if ap.CustomerID != principal.UserID {
				return httperr.ErrNotFound("appointment_not_found", "record not found")
			}
			if action != ActionCancel {
				return httperr.Conflict(
					"action_not_allowed",
					"customers can only cancel their bookings",
				)
			}
		}

		switch action {
		case ActionConfirm:
			if err := domain.Confirm(ap); err != nil {
				return err
			}

		case ActionComplete:
			if err := domain.Complete(ap); err != nil {
				return err
			}

		case ActionCancel:
			if err := domain.Cancel(ap); err != nil {
				return err
			}

			slot, err := tx.GetTimeSlotForUpdate(ctx, ap.TimeSlotID)
			if err != nil {
				return err
			}
			if slot.BookedCount > 0 {
				slot.BookedCount--
			}
			if err := tx.SaveTimeSlot(ctx, slot); err != nil {
				return err
			}
			salonID = slot.SalonID
			date = slot.Date

		default:
			return httperr.Validation("invalid_action", "action", "unknown transition")
		}

		return tx.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	if action == ActionCancel {
		uc.cache.Invalidate(ctx, salonID, date)
	}

	auditAction := "appointment_confirmed"
	switch action {
	case ActionCancel:
		auditAction = "appointment_cancelled"
	case ActionComplete:
		auditAction = "appointment_completed"
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.TimeSlot.SalonID,
		UserID:   &principal.UserID,
		Action:   auditAction,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
