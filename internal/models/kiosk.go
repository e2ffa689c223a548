package models

import (
	"time"

	"github.com/google/uuid"
)

// Kiosk is an unattended self-service terminal. PropertyID is nullable until
// the property sync assigns a default.
type Kiosk struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AccountID  uint       `gorm:"not null;index" json:"-"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	PropertyID *uuid.UUID `gorm:"type:uuid;index" json:"property_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
