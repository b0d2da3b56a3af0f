package models

import "time"

type ContactInfo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:55" json:"name"`
	LogoURL     string `gorm:"size:255" json:"logo_url"`
	Description string `gorm:"type:text" json:"description"`
	Phone       string `gorm:"size:11" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	Address     string `gorm:"size:255" json:"address"`

	SocialLinks []SocialLink `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE;" json:"social_links,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

type SocialLink struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ContactID uint `json:"contact_id"`

	Name    string `gorm:"size:50;not null" json:"name"`
	URL     string `gorm:"size:255;not null" json:"url"`
	IconURL string `gorm:"size:255" json:"icon_url"`
}
