package models

import "time"

// BlockedTime is an administratively blocked datetime range. It exists
// independently of whether slots were generated for that range yet.
type BlockedTime struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	StartDatetime time.Time `gorm:"not null" json:"start_datetime"`
	EndDatetime   time.Time `gorm:"not null" json:"end_datetime"`
	Reason        string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

// Covers reports whether a slot starting at t falls inside the range.
// Left-closed, right-open: a block starting exactly at t blocks it, one
// ending exactly at t does not.
func (b *BlockedTime) Covers(t time.Time) bool {
	return !b.StartDatetime.After(t) && t.Before(b.EndDatetime)
}
