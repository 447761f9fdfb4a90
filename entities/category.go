package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `json:"name"`
	Icon string    `json:"icon"` // symbolic icon reference, opaque to the backend

	Timestamp
}
