package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AccountConnectorSettings holds the per-account credentials used to scope
// origin connector calls. Created lazily on first sync if absent.
type AccountConnectorSettings struct {
	ID           uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AccountID    uint              `gorm:"not null;uniqueIndex" json:"-"`
	APIURL       string            `gorm:"size:255;not null" json:"api_url"`
	APIKey       string            `gorm:"size:255;not null" json:"-"`
	TestPlayerID string            `gorm:"size:100" json:"test_player_id"`
	Extra        datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"extra"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
