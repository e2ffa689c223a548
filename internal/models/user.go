package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a property staff member. PropertyID is nullable until assigned,
// either by an admin or by the property sync default-assignment step.
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AccountID  uint           `gorm:"not null;uniqueIndex:idx_users_account_email" json:"-"`
	Email      string         `gorm:"not null;size:255;uniqueIndex:idx_users_account_email" json:"email"`
	Password   string         `gorm:"not null" json:"-"`
	Name       string         `gorm:"size:255" json:"name"`
	Role       string         `gorm:"size:20;default:'staff'" json:"role"`
	PropertyID *uuid.UUID     `gorm:"type:uuid;index" json:"property_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
