package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
)

// SyncRealWin verifies the account's RealWin connection by running the
// test-player validation and records the verification time in the settings
// Extra blob. Settings are collected on first run like the property sync.
func (s *Syncer) SyncRealWin(ctx context.Context, accountID uint) error {
	settings, err := s.ensureSettings(accountID)
	if err != nil {
		return fmt.Errorf("account %d: %w", accountID, err)
	}

	scope := scopeFor(accountID, settings)

	player, err := s.conn.ValidatePlayer(ctx, scope)
	if err != nil {
		return fmt.Errorf("account %d: connection check failed: %w", accountID, err)
	}

	if settings.Extra == nil {
		settings.Extra = datatypes.JSONMap{}
	}
	settings.Extra["last_verified_at"] = time.Now().UTC().Format(time.RFC3339)
	settings.Extra["verified_player_id"] = player.PlayerID
	if err := s.store.SaveAccountSettings(settings); err != nil {
		return fmt.Errorf("account %d: %w", accountID, err)
	}

	slog.Info("realwin connection verified", "account_id", accountID,
		"player_id", player.PlayerID, "name", player.FirstName+" "+player.LastName)
	return nil
}
