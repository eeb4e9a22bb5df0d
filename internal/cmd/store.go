package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibescout/vibescout/internal/config"
	"github.com/vibescout/vibescout/internal/core/store"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.FromViper()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openStore(ctx context.Context) (*store.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return db, cfg, nil
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the local store",
}

var storeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the store and run migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, cfg, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close() // nolint:errcheck // best-effort cleanup

		location := cfg.Store.URL
		if location == "" {
			location = cfg.Store.Path
		}
		fmt.Printf("Store ready (%s): %s\n", db.Driver(), location)
		return nil
	},
}

var storePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved store location",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if cfg.Store.URL != "" {
			fmt.Println(cfg.Store.URL)
			return nil
		}
		fmt.Println(cfg.Store.Path)
		return nil
	},
}

var storePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove expired cached results",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, _, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close() // nolint:errcheck // best-effort cleanup

		pruned, err := db.PruneExpired(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Pruned %d expired cache entries.\n", pruned)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeInitCmd)
	storeCmd.AddCommand(storePathCmd)
	storeCmd.AddCommand(storePruneCmd)
}
