package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/models"
	"github.com/louk-2005/AppointmentSite/internal/timezone"
)

// seedMorning creates three hourly slots at 09:00, 10:00 and 11:00.
func seedMorning(t *testing.T, f *fixture, day time.Time) []models.TimeSlot {
	t.Helper()
	return []models.TimeSlot{
		f.seedSlot(t, day, "09:00", "10:00", 2),
		f.seedSlot(t, day, "10:00", "11:00", 2),
		f.seedSlot(t, day, "11:00", "12:00", 2),
	}
}

func rangeOn(t *testing.T, day time.Time, startHM, endHM string) (time.Time, time.Time) {
	t.Helper()
	start, err := timezone.OnDate(day, startHM)
	require.NoError(t, err)
	end, err := timezone.OnDate(day, endHM)
	require.NoError(t, err)
	return start, end
}

func TestBlockRangeDeactivatesCoveredSlots(t *testing.T) {
	f := newFixture(t)
	day := testDate(0)
	slots := seedMorning(t, f, day)

	start, end := rangeOn(t, day, "10:00", "12:00")

	uc := NewBlockRange(f.repo, nil, nil)
	affected, err := uc.Execute(context.Background(), BlockRangeInput{
		Principal:     f.asManager(),
		SalonID:       f.salon.ID,
		StartDatetime: start,
		EndDatetime:   end,
		Reason:        "renovation",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, affected)

	assert.True(t, f.reloadSlot(t, slots[0].ID).IsActive)

	blocked := f.reloadSlot(t, slots[1].ID)
	assert.False(t, blocked.IsActive)
	require.Len(t, blocked.Blocks, 1)
	assert.Equal(t, "renovation", blocked.Blocks[0].Reason)

	assert.False(t, f.reloadSlot(t, slots[2].ID).IsActive)

	var ranges []models.BlockedTime
	require.NoError(t, f.db.Where("salon_id = ?", f.salon.ID).Find(&ranges).Error)
	assert.Len(t, ranges, 1)
}

func TestBlockRangeEndIsExclusive(t *testing.T) {
	f := newFixture(t)
	day := testDate(0)
	slots := seedMorning(t, f, day)

	start, end := rangeOn(t, day, "10:00", "11:00")

	uc := NewBlockRange(f.repo, nil, nil)
	affected, err := uc.Execute(context.Background(), BlockRangeInput{
		Principal:     f.asManager(),
		SalonID:       f.salon.ID,
		StartDatetime: start,
		EndDatetime:   end,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	assert.False(t, f.reloadSlot(t, slots[1].ID).IsActive)
	// The 11:00 slot starts exactly at the range end and stays open.
	assert.True(t, f.reloadSlot(t, slots[2].ID).IsActive)
}

func TestBlockRangeOnlyReachesStartDate(t *testing.T) {
	f := newFixture(t)
	day := testDate(0)
	nextDay := testDate(1)

	daySlots := seedMorning(t, f, day)
	nextSlot := f.seedSlot(t, nextDay, "10:00", "11:00", 2)

	start, err := timezone.OnDate(day, "10:00")
	require.NoError(t, err)
	end, err := timezone.OnDate(nextDay, "11:00")
	require.NoError(t, err)

	uc := NewBlockRange(f.repo, nil, nil)
	_, err = uc.Execute(context.Background(), BlockRangeInput{
		Principal:     f.asManager(),
		SalonID:       f.salon.ID,
		StartDatetime: start,
		EndDatetime:   end,
	})
	require.NoError(t, err)

	// Slots of later dates are untouched; the range cascades to the
	// start date only.
	assert.True(t, f.reloadSlot(t, nextSlot.ID).IsActive)
	assert.False(t, f.reloadSlot(t, daySlots[1].ID).IsActive)
}

func TestBlockRangeRejectsEmptyRange(t *testing.T) {
	f := newFixture(t)
	day := testDate(0)

	start, _ := rangeOn(t, day, "10:00", "11:00")

	uc := NewBlockRange(f.repo, nil, nil)
	_, err := uc.Execute(context.Background(), BlockRangeInput{
		Principal:     f.asManager(),
		SalonID:       f.salon.ID,
		StartDatetime: start,
		EndDatetime:   start,
	})
	assert.True(t, httperr.Is(err, "invalid_block_range"))
}

func TestUnblockRangeRestoresSlots(t *testing.T) {
	f := newFixture(t)
	day := testDate(0)
	slots := seedMorning(t, f, day)

	start, end := rangeOn(t, day, "10:00", "12:00")

	blockUC := NewBlockRange(f.repo, nil, nil)
	_, err := blockUC.Execute(context.Background(), BlockRangeInput{
		Principal:     f.asManager(),
		SalonID:       f.salon.ID,
		StartDatetime: start,
		EndDatetime:   end,
	})
	require.NoError(t, err)

	unblockUC := NewUnblockRange(f.repo, nil, nil)
	affected, err := unblockUC.Execute(context.Background(), UnblockRangeInput{
		Principal:     f.asManager(),
		SalonID:       f.salon.ID,
		StartDatetime: start,
		EndDatetime:   end,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, affected)

	for _, s := range slots {
		reloaded := f.reloadSlot(t, s.ID)
		assert.True(t, reloaded.IsActive)
		assert.Empty(t, reloaded.Blocks)
	}

	var ranges []models.BlockedTime
	require.NoError(t, f.db.Where("salon_id = ?", f.salon.ID).Find(&ranges).Error)
	assert.Empty(t, ranges)
}

// Unblock matches ranges exactly; a different end time leaves the
// stored range in place but still reactivates the slots in its window.
func TestUnblockRangeExactMatchOnly(t *testing.T) {
	f := newFixture(t)
	day := testDate(0)
	seedMorning(t, f, day)

	start, end := rangeOn(t, day, "10:00", "12:00")

	blockUC := NewBlockRange(f.repo, nil, nil)
	_, err := blockUC.Execute(context.Background(), BlockRangeInput{
		Principal:     f.asManager(),
		SalonID:       f.salon.ID,
		StartDatetime: start,
		EndDatetime:   end,
	})
	require.NoError(t, err)

	_, shorterEnd := rangeOn(t, day, "10:00", "11:00")

	unblockUC := NewUnblockRange(f.repo, nil, nil)
	affected, err := unblockUC.Execute(context.Background(), UnblockRangeInput{
		Principal:     f.asManager(),
		SalonID:       f.salon.ID,
		StartDatetime: start,
		EndDatetime:   shorterEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	var ranges []models.BlockedTime
	require.NoError(t, f.db.Where("salon_id = ?", f.salon.ID).Find(&ranges).Error)
	assert.Len(t, ranges, 1)
}

func TestUnblockRangeWithoutStoredRange(t *testing.T) {
	f := newFixture(t)
	day := testDate(0)
	slot := f.seedSlot(t, day, "10:00", "11:00", 2)

	blockUC := NewBlockSlot(f.repo, nil, nil)
	require.NoError(t, blockUC.Execute(context.Background(), f.asManager(), slot.ID, "manual"))

	start, end := rangeOn(t, day, "10:00", "11:00")

	unblockUC := NewUnblockRange(f.repo, nil, nil)
	affected, err := unblockUC.Execute(context.Background(), UnblockRangeInput{
		Principal:     f.asManager(),
		SalonID:       f.salon.ID,
		StartDatetime: start,
		EndDatetime:   end,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, affected)
	assert.True(t, f.reloadSlot(t, slot.ID).IsActive)
}
