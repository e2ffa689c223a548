package sync

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/twocngdagz/lush-sub001/internal/account"
	"github.com/twocngdagz/lush-sub001/internal/models"
)

// Store is the narrow persistence surface the sync commands need. Lookup
// methods return (nil, nil) for absent records so callers branch on presence
// without inspecting driver errors.
type Store interface {
	Accounts() ([]models.Account, error)
	AccountSettings(accountID uint) (*models.AccountConnectorSettings, error)
	SaveAccountSettings(settings *models.AccountConnectorSettings) error

	FindProperty(accountID uint, externalID string) (*models.Property, error)
	CreateProperty(property *models.Property) error
	UpdateProperty(property *models.Property) error
	FirstProperty(accountID uint) (*models.Property, error)

	UsersWithoutProperty(accountID uint) ([]models.User, error)
	AssignUserProperty(userID, propertyID uuid.UUID) error
	KiosksWithoutProperty(accountID uint) ([]models.Kiosk, error)
	AssignKioskProperty(kioskID, propertyID uuid.UUID) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore wraps a GORM connection as a sync Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Accounts() ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Where("active = true").Order("id").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *gormStore) AccountSettings(accountID uint) (*models.AccountConnectorSettings, error) {
	var settings models.AccountConnectorSettings
	err := s.db.Scopes(account.ForAccount(accountID)).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *gormStore) SaveAccountSettings(settings *models.AccountConnectorSettings) error {
	return s.db.Save(settings).Error
}

func (s *gormStore) FindProperty(accountID uint, externalID string) (*models.Property, error) {
	var property models.Property
	err := s.db.Scopes(account.ForAccount(accountID)).Where("external_id = ?", externalID).First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *gormStore) CreateProperty(property *models.Property) error {
	return s.db.Create(property).Error
}

func (s *gormStore) UpdateProperty(property *models.Property) error {
	return s.db.Save(property).Error
}

func (s *gormStore) FirstProperty(accountID uint) (*models.Property, error) {
	var property models.Property
	err := s.db.Scopes(account.ForAccount(accountID)).Order("created_at").First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *gormStore) UsersWithoutProperty(accountID uint) ([]models.User, error) {
	var users []models.User
	if err := s.db.Scopes(account.ForAccount(accountID)).Where("property_id IS NULL").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *gormStore) AssignUserProperty(userID, propertyID uuid.UUID) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).Update("property_id", propertyID).Error
}

func (s *gormStore) KiosksWithoutProperty(accountID uint) ([]models.Kiosk, error) {
	var kiosks []models.Kiosk
	if err := s.db.Scopes(account.ForAccount(accountID)).Where("property_id IS NULL").Find(&kiosks).Error; err != nil {
		return nil, err
	}
	return kiosks, nil
}

func (s *gormStore) AssignKioskProperty(kioskID, propertyID uuid.UUID) error {
	return s.db.Model(&models.Kiosk{}).Where("id = ?", kioskID).Update("property_id", propertyID).Error
}
