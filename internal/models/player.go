package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Player mirrors a loyalty program member. Records are created either from an
// admin form submission or from an origin connector response.
type Player struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AccountID     uint       `gorm:"not null;index;uniqueIndex:idx_players_account_external" json:"-"`
	ExternalID    string     `gorm:"size:100;not null;uniqueIndex:idx_players_account_external" json:"external_id"`
	FirstName     string     `gorm:"size:100;not null" json:"first_name"`
	LastName      string     `gorm:"size:100;not null" json:"last_name"`
	MiddleInitial string     `gorm:"size:5" json:"middle_initial"`
	Birthday      *time.Time `json:"birthday"`
	Gender        string     `gorm:"size:20" json:"gender"`
	RankID        *uuid.UUID `gorm:"type:uuid;index" json:"rank_id"`

	// Identification
	IDType      string     `gorm:"size:50" json:"id_type"`
	IDNumber    string     `gorm:"size:100" json:"id_number"`
	IDExpiresAt *time.Time `json:"id_expires_at"`

	// Contact
	Email      *string `gorm:"size:255" json:"email"`
	Phone      *string `gorm:"size:50" json:"phone"`
	EmailOptIn bool    `gorm:"default:false" json:"email_opt_in"`
	PhoneOptIn bool    `gorm:"default:false" json:"phone_opt_in"`

	// Address
	Address  string `gorm:"size:255" json:"address"`
	Address2 string `gorm:"size:255" json:"address_2"`
	City     string `gorm:"size:100" json:"city"`
	State    string `gorm:"size:50" json:"state"`
	Zip      string `gorm:"size:20" json:"zip"`
	Country  string `gorm:"size:50" json:"country"`

	Excluded     bool      `gorm:"default:false" json:"excluded"`
	RegisteredAt time.Time `json:"registered_at"`

	PIN         *string `gorm:"size:100" json:"-"`
	PINAttempts int     `gorm:"default:0" json:"-"`

	Rank      *Rank          `gorm:"foreignKey:RankID" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
