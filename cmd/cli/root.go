package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/plan-a-meal/internal/config"
	"github.com/redmonkez12/plan-a-meal/internal/database"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "planameal",
		Short:         "Plan-a-meal administration",
		Long:          "Administrative commands for the Plan-a-meal API: migrations, admin accounts and data inspection.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newMigrateCmd(),
		newHashPasswordCmd(),
		newUserCmd(),
		newFoodCmd(),
	)

	return rootCmd
}

// openDB loads the configuration and connects to the configured database.
func openDB(ctx context.Context) (*config.Config, *bun.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Open(ctx, cfg.Database.URL, database.PoolConfig{MaxOpenConns: 2, MaxIdleConns: 1})
	if err != nil {
		return nil, nil, err
	}

	return cfg, db, nil
}
