package schedule

import (
	"context"
	"time"

	"github.com/louk-2005/AppointmentSite/internal/audit"
	"github.com/louk-2005/AppointmentSite/internal/cache"
	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/models"
	"github.com/louk-2005/AppointmentSite/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type GenerateSlotsInput struct {
	Principal domain.Principal
	SalonID   uint

	StartDate time.Time // inclusive
	EndDate   time.Time // inclusive
}

// ======================================================
// USE CASE
// ======================================================

// GenerateSlots expands the salon's recurring working hours into
// concrete time slots over a date range. Re-running it over the same
// range is idempotent: existing slots are refreshed in place and their
// booking counters are left untouched.
type GenerateSlots struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewGenerateSlots(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *GenerateSlots {
	return &GenerateSlots{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GenerateSlots) Execute(
	ctx context.Context,
	in GenerateSlotsInput,
) (int, error) {

	salon, err := uc.repo.GetSalonForManager(ctx, in.SalonID, in.Principal.UserID)
	if err != nil {
		return 0, err
	}

	if in.StartDate.After(in.EndDate) {
		return 0, httperr.Validation(
			"invalid_date_range", "start_date",
			"start date must not be after end date",
		)
	}

	cfg, err := uc.repo.GetSlotConfig(ctx, salon.ID)
	if err != nil {
		return 0, err
	}
	if cfg.IntervalMinutes <= 0 {
		return 0, httperr.Validation(
			"invalid_slot_interval", "interval_minutes",
			"slot interval must be positive",
		)
	}

	hours, err := uc.repo.ListActiveWorkingHours(ctx, salon.ID)
	if err != nil {
		return 0, err
	}

	byWeekday := make(map[int]models.WorkingHours, len(hours))
	for _, wh := range hours {
		byWeekday[wh.DayOfWeek] = wh
	}

	start := timezone.DateOnly(in.StartDate)
	end := timezone.DateOnly(in.EndDate)

	// Blocking status is recomputed from the persisted ranges; the
	// ranges themselves are never touched here.
	blocks, err := uc.repo.ListBlockedTimesOverlapping(
		ctx, salon.ID, start, end.AddDate(0, 0, 1),
	)
	if err != nil {
		return 0, err
	}

	total := 0
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		wh, ok := byWeekday[int(date.Weekday())]
		if !ok {
			// Day without active working hours: nothing to generate.
			continue
		}

		// One transaction per date, so a concurrent booking never sees
		// a day mid-generation.
		n := 0
		err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
			var txErr error
			n, txErr = generateDay(ctx, tx, salon.ID, date, wh, cfg, blocks)
			return txErr
		})
		if err != nil {
			return total, err
		}

		total += n
		uc.cache.Invalidate(ctx, salon.ID, date)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID: salon.ID,
		UserID:  &in.Principal.UserID,
		Action:  "slots_generated",
		Entity:  "time_slot",
		Metadata: map[string]any{
			"start_date": start.Format("2006-01-02"),
			"end_date":   end.Format("2006-01-02"),
			"count":      total,
		},
	})

	return total, nil
}

// generateDay walks one working window in fixed interval steps. A
// trailing candidate whose end would pass the window's end is dropped,
// not truncated.
func generateDay(
	ctx context.Context,
	tx domain.Repository,
	salonID uint,
	date time.Time,
	wh models.WorkingHours,
	cfg *models.SlotConfig,
	blocks []models.BlockedTime,
) (int, error) {

	dayStart, err := timezone.OnDate(date, wh.StartTime)
	if err != nil {
		return 0, httperr.Validation("invalid_working_hours", "start_time", "malformed working hours")
	}
	dayEnd, err := timezone.OnDate(date, wh.EndTime)
	if err != nil {
		return 0, httperr.Validation("invalid_working_hours", "end_time", "malformed working hours")
	}

	interval := time.Duration(cfg.IntervalMinutes) * time.Minute
	count := 0

	for cur := dayStart; !cur.Add(interval).After(dayEnd); cur = cur.Add(interval) {
		slotStart := cur
		slotEnd := cur.Add(interval)

		blocked := false
		for i := range blocks {
			if blocks[i].Covers(slotStart) {
				blocked = true
				break
			}
		}

		slot := &models.TimeSlot{
			SalonID:     salonID,
			Date:        date,
			StartTime:   timezone.Clock(slotStart),
			EndTime:     timezone.Clock(slotEnd),
			MaxCapacity: cfg.CapacityPerSlot,
			IsActive:    !blocked,
		}

		if err := domain.ValidateSlotWindow(slot.StartTime, slot.EndTime); err != nil {
			return count, err
		}

		if err := tx.UpsertTimeSlot(ctx, slot); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
