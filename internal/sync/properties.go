// Package sync holds the operator-invoked reconciliation commands that pull
// origin connector data into local records. Commands tolerate partial
// failures: a vendor error on one step is logged and the independent
// remaining steps still run.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/twocngdagz/lush-sub001/internal/connector"
	"github.com/twocngdagz/lush-sub001/internal/models"
)

// Prompter collects a missing settings value from the operator.
type Prompter interface {
	Prompt(label string) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(label string) (string, error)

func (f PrompterFunc) Prompt(label string) (string, error) { return f(label) }

type Syncer struct {
	store  Store
	conn   connector.Connector
	prompt Prompter
}

func NewSyncer(store Store, conn connector.Connector, prompt Prompter) *Syncer {
	return &Syncer{store: store, conn: conn, prompt: prompt}
}

// SyncProperties reconciles vendor property metadata into the local Property
// record for one account, then assigns a default property to any user or
// kiosk that has none. The default-assignment steps run even when the vendor
// call fails, and the whole command is idempotent: an unchanged vendor
// response produces no additional writes on a second run.
func (s *Syncer) SyncProperties(ctx context.Context, accountID uint) error {
	settings, err := s.ensureSettings(accountID)
	if err != nil {
		return fmt.Errorf("account %d: %w", accountID, err)
	}

	scope := scopeFor(accountID, settings)

	if err := s.upsertProperty(ctx, accountID, scope); err != nil {
		// Vendor flakiness must not block the local fallback steps.
		slog.Error("property sync failed", "account_id", accountID, "error", err)
	}

	if err := s.assignDefaults(accountID); err != nil {
		return fmt.Errorf("account %d: default assignment: %w", accountID, err)
	}
	return nil
}

func (s *Syncer) upsertProperty(ctx context.Context, accountID uint, scope connector.Scope) error {
	info, err := s.conn.PropertyInfo(ctx, scope)
	if err != nil {
		return err
	}
	if info == nil {
		// No properties configured vendor-side. Do not invent a placeholder
		// from empty data.
		return fmt.Errorf("origin has no properties configured")
	}

	existing, err := s.store.FindProperty(accountID, info.ExternalID)
	if err != nil {
		return err
	}
	if existing == nil {
		property := &models.Property{
			AccountID:  accountID,
			ExternalID: info.ExternalID,
			Name:       info.Name,
			Timezone:   info.Timezone,
		}
		if err := s.store.CreateProperty(property); err != nil {
			return err
		}
		slog.Info("property created", "account_id", accountID, "external_id", info.ExternalID)
		return nil
	}

	updated := existing.Name != info.Name
	existing.Name = info.Name
	// A locally corrected timezone is authoritative: only replace values that
	// are not loadable IANA zones.
	if !validTimezone(existing.Timezone) && existing.Timezone != info.Timezone {
		existing.Timezone = info.Timezone
		updated = true
	}
	if !updated {
		return nil
	}
	if err := s.store.UpdateProperty(existing); err != nil {
		return err
	}
	slog.Info("property updated", "account_id", accountID, "external_id", info.ExternalID)
	return nil
}

// assignDefaults gives every user and kiosk with no property the account's
// first property. A no-op when everything is already assigned or the account
// has no properties yet.
func (s *Syncer) assignDefaults(accountID uint) error {
	property, err := s.store.FirstProperty(accountID)
	if err != nil {
		return err
	}
	if property == nil {
		return nil
	}

	users, err := s.store.UsersWithoutProperty(accountID)
	if err != nil {
		return err
	}
	for _, u := range users {
		if err := s.store.AssignUserProperty(u.ID, property.ID); err != nil {
			return err
		}
	}

	kiosks, err := s.store.KiosksWithoutProperty(accountID)
	if err != nil {
		return err
	}
	for _, k := range kiosks {
		if err := s.store.AssignKioskProperty(k.ID, property.ID); err != nil {
			return err
		}
	}

	if len(users) > 0 || len(kiosks) > 0 {
		slog.Info("default property assigned", "account_id", accountID,
			"users", len(users), "kiosks", len(kiosks))
	}
	return nil
}

// ensureSettings loads the account's connector settings, collecting them
// interactively on first sync if absent.
func (s *Syncer) ensureSettings(accountID uint) (*models.AccountConnectorSettings, error) {
	settings, err := s.store.AccountSettings(accountID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}
	if s.prompt == nil {
		return nil, fmt.Errorf("connector settings missing and no prompt available")
	}

	apiURL, err := s.prompt.Prompt("Origin API URL")
	if err != nil {
		return nil, err
	}
	apiKey, err := s.prompt.Prompt("Origin API key")
	if err != nil {
		return nil, err
	}
	testPlayer, err := s.prompt.Prompt("Test player id")
	if err != nil {
		return nil, err
	}

	settings = &models.AccountConnectorSettings{
		AccountID:    accountID,
		APIURL:       apiURL,
		APIKey:       apiKey,
		TestPlayerID: testPlayer,
	}
	if err := s.store.SaveAccountSettings(settings); err != nil {
		return nil, err
	}
	slog.Info("connector settings created", "account_id", accountID)
	return settings, nil
}

func scopeFor(accountID uint, settings *models.AccountConnectorSettings) connector.Scope {
	scope := connector.Scope{
		AccountID:    accountID,
		BaseURL:      settings.APIURL,
		APIKey:       settings.APIKey,
		TestPlayerID: settings.TestPlayerID,
	}
	if target, ok := settings.Extra["property_id"].(string); ok {
		scope.PropertyID = target
	}
	return scope
}

func validTimezone(name string) bool {
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
