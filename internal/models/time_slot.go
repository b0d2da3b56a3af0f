package models

import "time"

// TimeSlot is the atomic bookable unit. Capacity accounting lives here;
// BookedCount is only ever mutated through the booking operations, and
// the active flag only through the block operations.
type TimeSlot struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex:idx_salon_date_start" json:"salon_id"`

	Date      time.Time `gorm:"type:date;uniqueIndex:idx_salon_date_start" json:"date"`
	StartTime string    `gorm:"size:5;uniqueIndex:idx_salon_date_start" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`

	MaxCapacity int `json:"max_capacity"`
	BookedCount int `gorm:"default:0" json:"booked_count"`

	// No gorm default: a default tag makes gorm drop the zero value
	// from the INSERT, and a slot generated inside a blocked range
	// must be storable as inactive from the start.
	IsActive bool `json:"is_active"`

	// Block log. Non-empty exactly when the slot was deactivated by a
	// block operation; cleared on unblock.
	Blocks []TimeSlotBlock `gorm:"constraint:OnDelete:CASCADE;" json:"blocks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimeSlotBlock records one reason a slot was forced inactive.
type TimeSlotBlock struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	TimeSlotID uint `json:"time_slot_id"`

	Reason    string    `gorm:"size:255" json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *TimeSlot) AvailableCapacity() int {
	return s.MaxCapacity - s.BookedCount
}

func (s *TimeSlot) IsAvailable() bool {
	return s.IsActive && s.AvailableCapacity() > 0
}

// Block deactivates the slot and pushes a reason entry. Returns false
// when the slot is already inactive; the caller must not stack a second
// block through this path.
func (s *TimeSlot) Block(reason string) bool {
	if !s.IsActive {
		return false
	}

	s.IsActive = false
	s.Blocks = append(s.Blocks, TimeSlotBlock{
		TimeSlotID: s.ID,
		Reason:     reason,
	})
	return true
}

// Unblock clears every block entry and reactivates the slot. Returns
// false when the slot is already active.
func (s *TimeSlot) Unblock() bool {
	if s.IsActive {
		return false
	}

	s.Blocks = nil
	s.IsActive = true
	return true
}
