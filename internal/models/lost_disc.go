package models

import (
	"time"

	"github.com/google/uuid"
)

// LostDisc is a found-disc report: a disc someone found and is holding for
// its owner. UserID is the finder.
type LostDisc struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Brand       string     `gorm:"size:255;index" json:"brand"`
	Name        string     `gorm:"size:255" json:"name"`
	Color       string     `gorm:"size:100" json:"color"`
	Location    string     `gorm:"size:255" json:"location"`
	City        string     `gorm:"size:100" json:"city"`
	State       string     `gorm:"size:100;index" json:"state"`
	Country     string     `gorm:"size:100" json:"country"`
	Description string     `gorm:"size:2000" json:"description"`
	WrittenInfo string     `gorm:"size:500" json:"written_info"`
	PhoneNumber string     `gorm:"size:50" json:"phone_number"`
	DateFound   *time.Time `json:"date_found,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	User        User       `gorm:"foreignKey:UserID" json:"-"`
}

type LostDiscImage struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LostDiscID  uuid.UUID `gorm:"type:uuid;not null;index" json:"lost_disc_id"`
	StoragePath string    `gorm:"not null;size:500" json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}
