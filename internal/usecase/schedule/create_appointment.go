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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Principal domain.Principal

	TimeSlotID uint
	StaffID    *uint
	ServiceID  *uint
	Notes      string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment books a customer into a slot. The capacity check
// and the counter increment run against a row-locked slot inside one
// transaction, so two concurrent bookings cannot both pass the check
// and overbook the slot.
type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	var ap *models.Appointment
	var salonID uint
	var date time.Time

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		slot, err := tx.GetTimeSlotForUpdate(ctx, in.TimeSlotID)
		if err != nil {
			return err
		}

		if !slot.IsAvailable() {
			return httperr.Conflict(
				"slot_unavailable",
				"this time slot is no longer available",
			)
		}
		if slot.AvailableCapacity() <= 0 {
			return httperr.Conflict(
				"capacity_exceeded",
				"this time slot is fully booked",
			)
		}

		// One active booking per customer per calendar date, across
		// all salons.
		dup, err := tx.HasActiveAppointmentOnDate(ctx, in.Principal.UserID, slot.Date)
		if err != nil {
			return err
		}
		if dup {
			return httperr.Conflict(
				"duplicate_booking_for_date",
				"you already have a booking on this date",
			)
		}

		ap = &models.Appointment{
			CustomerID: in.Principal.UserID,
			TimeSlotID: slot.ID,
			StaffID:    in.StaffID,
			ServiceID:  in.ServiceID,
			Status:     string(domain.InitialStatus()),
			Notes:      in.Notes,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		slot.BookedCount++
		if err := tx.SaveTimeSlot(ctx, slot); err != nil {
			return err
		}

		salonID = slot.SalonID
		date = slot.Date
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, salonID, date)

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &in.Principal.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
