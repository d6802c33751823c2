package models

import (
	"time"

	"github.com/google/uuid"
)

// Disc is a disc in a user's collection, optionally marked for sale.
type Disc struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Brand     string    `gorm:"size:255;index" json:"brand"`
	Plastic   string    `gorm:"size:100" json:"plastic"`
	Weight    int       `json:"weight"`
	Condition string    `gorm:"size:50" json:"condition"`
	Color     string    `gorm:"size:100" json:"color"`
	Stamp     string    `gorm:"size:255" json:"stamp"`
	Inked     bool      `gorm:"default:false" json:"inked"`
	ForSale   bool      `gorm:"default:false;index" json:"for_sale"`
	Price     *float64  `json:"price,omitempty"`
	Notes     string    `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

// DiscImage references an already-uploaded image by storage path. Upload and
// resizing happen outside this service.
type DiscImage struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DiscID      uuid.UUID `gorm:"type:uuid;not null;index" json:"disc_id"`
	StoragePath string    `gorm:"not null;size:500" json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}
