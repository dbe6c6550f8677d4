package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redmonkez12/plan-a-meal/internal/database"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, db, err := openDB(cmd.Context())
				if err != nil {
					return err
				}
				defer db.Close()

				if err := database.Migrate(cmd.Context(), db.DB); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, db, err := openDB(cmd.Context())
				if err != nil {
					return err
				}
				defer db.Close()

				return database.MigrationStatus(cmd.Context(), db.DB)
			},
		},
	)

	return migrateCmd
}
