package entities

import (
	"time"

	"github.com/google/uuid"
)

type Listing struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description" gorm:"type:text"`
	CategoryID   uuid.UUID  `json:"category_id"`
	CategoryName string     `json:"category_name"` // denormalized at creation time
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Address      string     `json:"address,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"` // nil means no expiry policy
	IsAvailable  bool       `json:"is_available"`
	ImageURL     string     `json:"image_url,omitempty"`

	User        *User         `gorm:"foreignKey:UserID"`
	Category    *Category     `gorm:"foreignKey:CategoryID"`
	PickupSlots []*PickupSlot `gorm:"foreignKey:ListingID"`
	Ratings     []*Rating     `gorm:"foreignKey:ListingID"`
	Timestamp
}

type PickupSlot struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListingID   uuid.UUID `json:"listing_id"`
	Weekday     int       `json:"weekday"` // 0 (Sunday) through 6 (Saturday)
	StartMinute int       `json:"start_minute"`
	EndMinute   int       `json:"end_minute"`

	Listing *Listing `gorm:"foreignKey:ListingID"`
	Timestamp
}

type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	RaterID   uuid.UUID `json:"rater_id"`
	Stars     float64   `json:"stars"` // 1.0 - 5.0
	Comment   string    `json:"comment,omitempty"`

	Listing *Listing `gorm:"foreignKey:ListingID"`
	Rater   *User    `gorm:"foreignKey:RaterID"`
	Timestamp
}
