package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/twocngdagz/lush-sub001/internal/account"
	"github.com/twocngdagz/lush-sub001/internal/connector"
	"github.com/twocngdagz/lush-sub001/internal/models"
	"github.com/twocngdagz/lush-sub001/internal/transform"
)

// KioskService bridges admin kiosk operations to the bound origin connector.
// The connector instance is shared and stateless; per-account credentials are
// loaded from settings and threaded through each call as a Scope.
type KioskService struct {
	db   *gorm.DB
	conn connector.Connector
}

func NewKioskService(db *gorm.DB, conn connector.Connector) *KioskService {
	return &KioskService{db: db, conn: conn}
}

// scopeFor loads the account's connector settings into a call scope.
func (s *KioskService) scopeFor(accountID uint) (connector.Scope, error) {
	var settings models.AccountConnectorSettings
	err := s.db.Scopes(account.ForAccount(accountID)).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return connector.Scope{}, connector.ConfigurationError("connector settings missing for account")
	}
	if err != nil {
		return connector.Scope{}, err
	}

	scope := connector.Scope{
		AccountID:    accountID,
		BaseURL:      settings.APIURL,
		APIKey:       settings.APIKey,
		TestPlayerID: settings.TestPlayerID,
	}
	if target, ok := settings.Extra["property_id"].(string); ok {
		scope.PropertyID = target
	}
	return scope, nil
}

func (s *KioskService) ValidateConnection(ctx context.Context, accountID uint) (*connector.PlayerValidation, error) {
	scope, err := s.scopeFor(accountID)
	if err != nil {
		return nil, err
	}
	return s.conn.ValidatePlayer(ctx, scope)
}

func (s *KioskService) Groups(ctx context.Context, accountID uint) ([]connector.KioskGroup, error) {
	scope, err := s.scopeFor(accountID)
	if err != nil {
		return nil, err
	}
	return s.conn.KioskGroups(ctx, scope)
}

func (s *KioskService) EnrollPlayer(ctx context.Context, accountID uint, playerID, groupID string) (bool, error) {
	scope, err := s.scopeFor(accountID)
	if err != nil {
		return false, err
	}
	return s.conn.EnrollPlayerInGroup(ctx, scope, playerID, groupID)
}

func (s *KioskService) Methods(ctx context.Context, accountID uint) ([]connector.KioskMethod, error) {
	scope, err := s.scopeFor(accountID)
	if err != nil {
		return nil, err
	}
	return s.conn.KioskMethods(ctx, scope)
}

func (s *KioskService) InvokeMethod(ctx context.Context, accountID uint, playerID, methodID string) (int, error) {
	scope, err := s.scopeFor(accountID)
	if err != nil {
		return 0, err
	}
	return s.conn.InvokeMethod(ctx, scope, playerID, connector.KioskMethod{ID: methodID})
}

// PlayerOffers returns the transformed offer listing for display.
func (s *KioskService) PlayerOffers(ctx context.Context, accountID uint, playerID string) ([]transform.OfferOutput, error) {
	scope, err := s.scopeFor(accountID)
	if err != nil {
		return nil, err
	}
	offers, err := s.conn.PlayerOffers(ctx, scope, playerID)
	if err != nil {
		return nil, err
	}
	return transform.Offers(offers), nil
}

func (s *KioskService) RedeemOffer(ctx context.Context, accountID uint, guid string) (int, error) {
	scope, err := s.scopeFor(accountID)
	if err != nil {
		return 0, err
	}
	return s.conn.RedeemOffer(ctx, scope, guid)
}

func (s *KioskService) PlayerScore(ctx context.Context, accountID uint, playerID string) (int, error) {
	scope, err := s.scopeFor(accountID)
	if err != nil {
		return 0, err
	}
	return s.conn.PlayerScore(ctx, scope, playerID)
}
