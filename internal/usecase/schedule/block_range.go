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

type BlockRangeInput struct {
	Principal domain.Principal
	SalonID   uint

	StartDatetime time.Time
	EndDatetime   time.Time
	Reason        string
}

// ======================================================
// USE CASE
// ======================================================

// BlockRange persists a blocked datetime range and cascades it to the
// already-generated slots of that day. Affected slots are the active
// ones of the range's start date whose start time falls in
// [start.time, end.time). A range spanning midnight does not reach
// slots of later dates, so multi-day blocks take one call per day.
type BlockRange struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewBlockRange(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *BlockRange {
	return &BlockRange{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BlockRange) Execute(
	ctx context.Context,
	in BlockRangeInput,
) (int, error) {

	salon, err := uc.repo.GetSalonForManager(ctx, in.SalonID, in.Principal.UserID)
	if err != nil {
		return 0, err
	}

	blocked := &models.BlockedTime{
		SalonID:       salon.ID,
		StartDatetime: in.StartDatetime,
		EndDatetime:   in.EndDatetime,
		Reason:        in.Reason,
	}
	if err := domain.ValidateBlockRange(blocked); err != nil {
		return 0, err
	}

	date := timezone.DateOnly(in.StartDatetime)
	affected := 0

	err = uc.repo.Transact(ctx, func(tx domain.Repository) error {
		// Overlapping ranges are allowed and stored as-is; there is no
		// merge or dedup.
		if err := tx.CreateBlockedTime(ctx, blocked); err != nil {
			return err
		}

		slots, err := tx.ListSlotsByTimeOfDay(
			ctx, salon.ID, date,
			timezone.Clock(in.StartDatetime),
			timezone.Clock(in.EndDatetime),
			true,
		)
		if err != nil {
			return err
		}

		for i := range slots {
			if !slots[i].Block(in.Reason) {
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
		SalonID:  salon.ID,
		UserID:   &in.Principal.UserID,
		Action:   "time_range_blocked",
		Entity:   "blocked_time",
		EntityID: &blocked.ID,
		Metadata: map[string]any{
			"start":          in.StartDatetime,
			"end":            in.EndDatetime,
			"affected_slots": affected,
		},
	})

	return affected, nil
}
