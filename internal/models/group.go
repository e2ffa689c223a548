package models

import (
	"time"

	"github.com/google/uuid"
)

// Group is a marketing player group with a validity window. Membership is
// many-to-many; adding or removing players does not affect group identity.
type Group struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AccountID uint      `gorm:"not null;index" json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Players   []Player  `gorm:"many2many:group_players" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
