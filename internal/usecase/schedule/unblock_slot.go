package schedule

import (
	"context"
	"time"

	"github.com/louk-2005/AppointmentSite/internal/audit"
	"github.com/louk-2005/AppointmentSite/internal/cache"
	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/httperr"
)

// UnblockSlot reactivates a single slot, clearing its block log.
type UnblockSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewUnblockSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *UnblockSlot {
	return &UnblockSlot{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *UnblockSlot) Execute(
	ctx context.Context,
	principal domain.Principal,
	timeSlotID uint,
) error {

	var salonID uint
	var date time.Time

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		slot, err := tx.GetTimeSlotForUpdate(ctx, timeSlotID)
		if err != nil {
			return err
		}

		// Only the salon's own manager may touch its slots.
		if _, err := tx.GetSalonForManager(ctx, slot.SalonID, principal.UserID); err != nil {
			return err
		}

		if !slot.Unblock() {
			return httperr.Conflict(
				"slot_not_blocked",
				"this time slot is not blocked",
			)
		}

		salonID = slot.SalonID
		date = slot.Date
		return tx.SaveSlotBlockState(ctx, slot)
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, salonID, date)

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &principal.UserID,
		Action:   "time_slot_unblocked",
		Entity:   "time_slot",
		EntityID: &timeSlotID,
	})

	return nil
}
