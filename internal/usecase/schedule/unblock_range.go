package schedule

import (
	"context"
	"time"

	"github.com/louk-2005/AppointmentSite/internal/audit"
	"github.com/louk-2005/AppointmentSite/internal/cache"
	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/models"
	"github.com/louk-2005/AppointmentSite/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UnblockRangeInput struct {
	Principal domain.Principal
	SalonID   uint

	StartDatetime time.Time
	EndDatetime   time.Time
}

// ======================================================
// USE CASE
// ======================================================

// UnblockRange removes blocked ranges matching the exact start/end pair
// (exact match, not overlap) and reactivates the inactive slots of the
// start date inside the time-of-day window. Blocks are not reference
// counted: a slot covered by two overlapping ranges becomes active
// again after a single unblock clears its block log.
type UnblockRange struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewUnblockRange(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *UnblockRange {
	return &UnblockRange{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UnblockRange) Execute(
	ctx context.Context,
	in UnblockRangeInput,
) (int, error) {

	salon, err := uc.repo.GetSalonForManager(ctx, in.SalonID, in.Principal.UserID)
	if err != nil {
		return 0, err
	}

	if err := domain.ValidateBlockRange(&models.BlockedTime{
		StartDatetime: in.StartDatetime,
		EndDatetime:   in.EndDatetime,
	}); err != nil {
		return 0, err
	}

	date := timezone.DateOnly(in.StartDatetime)
	affected := 0

	err = uc.repo.Transact(ctx, func(tx domain.Repository) error {
		// Zero matches is not an error: slots inside the window are
		// reactivated either way.
		if _, err := tx.DeleteBlockedTimesExact(
			ctx, salon.ID, in.StartDatetime, in.EndDatetime,
		); err != nil {
			return err
		}

		slots, err := tx.ListSlotsByTimeOfDay(
			ctx, salon.ID, date,
			timezone.Clock(in.StartDatetime),
			timezone.Clock(in.EndDatetime),
			false,
		)
		if err != nil {
			return err
		}

		for i := range slots {
			if !slots[i].Unblock() {
				continue
			}
			if err := tx.SaveSlotBlockState(ctx, &slots[i]); err != nil {
				return err
			}
			affected++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	uc.cache.Invalidate(ctx, salon.ID, date)

	uc.audit.Dispatch(audit.Event{
		SalonID: salon.ID,
		UserID:  &in.Principal.UserID,
		Action:  "time_range_unblocked",
		Entity:  "blocked_time",
		Metadata: map[string]any{
			"start":             in.StartDatetime,
			"end":               in.EndDatetime,
			"reactivated_slots": affected,
		},
	})

	return affected, nil
}
