package entities

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListingID   uuid.UUID  `json:"listing_id"`
	ReserverID  uuid.UUID  `json:"reserver_id"`
	Status      string     `json:"status"` // Active, Cancelled, Completed
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	Listing  *Listing `gorm:"foreignKey:ListingID"`
	Reserver *User    `gorm:"foreignKey:ReserverID"`
	Timestamp
}
