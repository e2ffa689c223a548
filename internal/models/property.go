package models

import (
	"time"

	"github.com/google/uuid"
)

// Property is a physical venue mirrored from origin connector data, keyed by
// (external id, account id).
type Property struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AccountID  uint      `gorm:"not null;index;uniqueIndex:idx_properties_account_external" json:"-"`
	ExternalID string    `gorm:"size:100;not null;uniqueIndex:idx_properties_account_external" json:"external_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Timezone   string    `gorm:"size:64" json:"timezone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
