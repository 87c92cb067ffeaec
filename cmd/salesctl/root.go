package main

import (
	"github.com/spf13/cobra"

	"github.com/sales-tracker/backend/config"
	"github.com/sales-tracker/backend/internal/infra/db"
)

// newRootCommand builds the salesctl command tree.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "salesctl",
		Short:         "Sales Tracker operations CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("database-url", "", "PostgreSQL URL (defaults to DATABASE_URL)")

	rootCmd.AddCommand(
		newMigrateCommand(),
		newSeedCommand(),
		newTokenCommand(),
	)

	return rootCmd
}

// openDatabase connects using the --database-url flag or the environment.
func openDatabase(cmd *cobra.Command) (*db.Database, error) {
	cfg := config.Load()
	if url, _ := cmd.Flags().GetString("database-url"); url != "" {
		cfg.Database.URL = url
	}
	return db.NewPostgresConnection(&cfg.Database)
}
