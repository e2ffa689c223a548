package services

import (
	"context"
	"log/slog"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"

	"github.com/twocngdagz/lush-sub001/internal/config"
	"github.com/twocngdagz/lush-sub001/internal/connector"
	"github.com/twocngdagz/lush-sub001/internal/sync"
)

// StartPropertySyncScheduler runs the property sync for every active account
// on a fixed interval. Accounts without stored settings are skipped (no
// prompter is available in the server process). Returns the scheduler so the
// caller can shut it down.
func StartPropertySyncScheduler(db *gorm.DB, conn connector.Connector, cfg *config.Config) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	store := sync.NewStore(db)
	syncer := sync.NewSyncer(store, conn, nil)

	_, err = sched.NewJob(
		gocron.DurationJob(cfg.SyncInterval),
		gocron.NewTask(func() {
			accounts, err := store.Accounts()
			if err != nil {
				slog.Error("scheduled sync: account listing failed", "error", err)
				return
			}
			for _, acct := range accounts {
				settings, err := store.AccountSettings(acct.ID)
				if err != nil || settings == nil {
					continue
				}
				if err := syncer.SyncProperties(context.Background(), acct.ID); err != nil {
					slog.Error("scheduled property sync failed", "account_id", acct.ID, "error", err)
				}
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	slog.Info("property sync scheduler started", "interval", cfg.SyncInterval.String())
	return sched, nil
}
