package models

import "time"

// Platform roles.
const (
	RoleCustomer = "CUSTOMER"
	RoleStaff    = "STAFF"
	RoleManager  = "MANAGER"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	PhoneNumber  string `gorm:"size:11" json:"phone_number"`
	Role         string `gorm:"size:20;default:'CUSTOMER'" json:"role"`
	ImageURL     string `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

func (u *User) IsStaff() bool {
	return u.Role == RoleStaff
}

func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}
