package cmd

import (
	"context"
	"log"
	"time"

	"file-vault/core/config"
	"file-vault/core/logger"
	"file-vault/core/storage"
	"file-vault/feature/vault"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var lifecycleDays int

// lifecycleCmd applies the tombstone purge rule once and exits.
var lifecycleCmd = &cobra.Command{
	Use:   "lifecycle",
	Short: "Install the tombstone purge lifecycle rule",
	Long: `Installs (or updates) the bucket lifecycle rule that expires
tombstoned files after the grace period. Intended for one-off setup or
cron-driven reconciliation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		// No journal for the one-shot command.
		svc, err := vault.New(store, cfg.Storage, cfg.Vault, logg, nil)
		if err != nil {
			return err
		}

		days := lifecycleDays
		if days <= 0 {
			days = cfg.Vault.GracePeriodDays
		}

		if svc.TombstonePrefix() == "" {
			logg.Warn("No tombstone prefix configured, nothing to do")
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if err := svc.UpdateTombstoneLifecycle(ctx, days); err != nil {
			return err
		}

		logg.Info("Tombstone purge rule installed",
			zap.String("prefix", svc.TombstonePrefix()),
			zap.Int("days", days),
		)
		return nil
	},
}

func init() {
	lifecycleCmd.Flags().IntVar(&lifecycleDays, "days", 0, "grace period in days (defaults to the configured value)")
	RootCmd.AddCommand(lifecycleCmd)
}
