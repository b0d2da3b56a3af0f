package models

import "time"

// WorkingHours is the recurring open window of a salon for one weekday.
// Times are stored as "15:04" strings; the window is half-open
// [StartTime, EndTime).
type WorkingHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex:idx_salon_weekday" json:"salon_id"`

	DayOfWeek int `gorm:"uniqueIndex:idx_salon_weekday" json:"day_of_week"` // 0..6

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	// Set explicitly at every create site; a gorm default would turn
	// an inactive row into an active one on INSERT.
	IsActive bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
