package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds a user's disclosable contact fields. Other users only ever
// read these through the claim disclosure gate.
type Profile struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Name            string    `gorm:"size:255" json:"name"`
	Email           string    `gorm:"size:255" json:"email"`
	PhoneNumber     string    `gorm:"size:50" json:"phone_number"`
	Location        string    `gorm:"size:255" json:"location"`
	PDGANumber      string    `gorm:"size:20" json:"pdga_number"`
	ShowInDirectory bool      `gorm:"default:false" json:"show_in_directory"`
	IsAdmin         bool      `gorm:"default:false" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	User            User      `gorm:"foreignKey:UserID" json:"-"`
}
