package models

import "time"

// SlotConfig is the per-salon slot generation policy (1:1 with Salon).
type SlotConfig struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex" json:"salon_id"`

	// No gorm defaults: zero capacity is a legal policy (slots exist
	// but accept no bookings) and must survive the INSERT.
	IntervalMinutes int `json:"interval_minutes"`
	CapacityPerSlot int `json:"capacity_per_slot"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
