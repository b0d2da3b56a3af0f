package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlotCapacity(t *testing.T) {
	tests := []struct {
		name      string
		slot      TimeSlot
		remaining int
		available bool
	}{
		{
			name:      "empty slot",
			slot:      TimeSlot{MaxCapacity: 3, BookedCount: 0, IsActive: true},
			remaining: 3,
			available: true,
		},
		{
			name:      "partially booked",
			slot:      TimeSlot{MaxCapacity: 3, BookedCount: 2, IsActive: true},
			remaining: 1,
			available: true,
		},
		{
			name:      "full slot",
			slot:      TimeSlot{MaxCapacity: 3, BookedCount: 3, IsActive: true},
			remaining: 0,
			available: false,
		},
		{
			name:      "inactive slot with capacity",
			slot:      TimeSlot{MaxCapacity: 3, BookedCount: 0, IsActive: false},
			remaining: 3,
			available: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.remaining, tt.slot.AvailableCapacity())
			assert.Equal(t, tt.available, tt.slot.IsAvailable())
		})
	}
}

func TestTimeSlotBlockUnblock(t *testing.T) {
	slot := TimeSlot{MaxCapacity: 2, IsActive: true}

	assert.True(t, slot.Block("maintenance"))
	assert.False(t, slot.IsActive)
	assert.Len(t, slot.Blocks, 1)
	assert.Equal(t, "maintenance", slot.Blocks[0].Reason)

	// A second block through this path is rejected.
	assert.False(t, slot.Block("again"))
	assert.Len(t, slot.Blocks, 1)

	assert.True(t, slot.Unblock())
	assert.True(t, slot.IsActive)
	assert.Empty(t, slot.Blocks)

	assert.False(t, slot.Unblock())
}

func TestTimeSlotBlockPreservesBookings(t *testing.T) {
	slot := TimeSlot{MaxCapacity: 3, BookedCount: 2, IsActive: true}

	slot.Block("holiday")
	assert.Equal(t, 2, slot.BookedCount)

	slot.Unblock()
	assert.Equal(t, 2, slot.BookedCount)
	assert.True(t, slot.IsAvailable())
}

func TestBlockedTimeCovers(t *testing.T) {
	loc := time.UTC
	block := BlockedTime{
		StartDatetime: time.Date(2026, 3, 2, 10, 0, 0, 0, loc),
		EndDatetime:   time.Date(2026, 3, 2, 12, 0, 0, 0, loc),
	}

	tests := []struct {
		name    string
		at      time.Time
		covered bool
	}{
		{"before range", time.Date(2026, 3, 2, 9, 59, 0, 0, loc), false},
		{"exactly at start", time.Date(2026, 3, 2, 10, 0, 0, 0, loc), true},
		{"inside range", time.Date(2026, 3, 2, 11, 0, 0, 0, loc), true},
		{"exactly at end", time.Date(2026, 3, 2, 12, 0, 0, 0, loc), false},
		{"after range", time.Date(2026, 3, 2, 12, 1, 0, 0, loc), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.covered, block.Covers(tt.at))
		})
	}
}
