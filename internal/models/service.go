package models

import "time"

// Service is one entry of a salon's catalog.
type Service struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Description     string  `gorm:"type:text" json:"description"`
	ImageURL        string  `gorm:"size:255" json:"image_url"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `gorm:"type:decimal(10,2)" json:"price"`
	Show            bool    `gorm:"default:false" json:"show"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
