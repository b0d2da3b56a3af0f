package models

import "time"

type Salon struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Address     string `gorm:"type:text" json:"address"`
	Description string `gorm:"type:text" json:"description"`

	ManagerID uint `json:"manager_id"`
	Manager   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Owned child collections. Deleting the salon removes them all.
	WorkingHours []WorkingHours `gorm:"constraint:OnDelete:CASCADE;" json:"working_hours,omitempty"`
	SlotConfig   *SlotConfig    `gorm:"constraint:OnDelete:CASCADE;" json:"slot_config,omitempty"`
	TimeSlots    []TimeSlot     `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	BlockedTimes []BlockedTime  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Services     []Service      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
