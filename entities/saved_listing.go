package entities

import (
	"time"

	"github.com/google/uuid"
)

type SavedListing struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"index:idx_saved_user_listing,unique" json:"user_id"`
	ListingID uuid.UUID `gorm:"index:idx_saved_user_listing,unique" json:"listing_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User    *User    `gorm:"foreignKey:UserID"`
	Listing *Listing `gorm:"foreignKey:ListingID"`
}
