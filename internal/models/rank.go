package models

import (
	"time"

	"github.com/google/uuid"
)

// Rank is a property-owned player tier. Threshold is the points boundary at
// which a player is promoted into the tier.
type Rank struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AccountID uint      `gorm:"not null;index" json:"-"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Threshold int       `gorm:"not null;default:0" json:"threshold"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
