package schedule

import (
	"context"
	"time"

	"github.com/louk-2005/AppointmentSite/internal/cache"
	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/models"
	"github.com/louk-2005/AppointmentSite/internal/timezone"
)

// ListAvailableSlots returns the bookable slots of a salon for one
// date: active and with remaining capacity. Results are cached per
// (salon, date) and invalidated by every mutating schedule operation.
type ListAvailableSlots struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewListAvailableSlots(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
) *ListAvailableSlots {
	return &ListAvailableSlots{
		repo:  repo,
		cache: cache,
	}
}

func (uc *ListAvailableSlots) Execute(
	ctx context.Context,
	salonID uint,
	date time.Time,
) ([]models.TimeSlot, error) {

	date = timezone.DateOnly(date)

	if slots, ok := uc.cache.Get(ctx, salonID, date); ok {
		return slots, nil
	}

	if _, err := uc.repo.GetSalonByID(ctx, salonID); err != nil {
		return nil, err
	}

	slots, err := uc.repo.ListAvailableSlots(ctx, salonID, date)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, salonID, date, slots)
	return slots, nil
}
