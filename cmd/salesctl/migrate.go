package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database auto-migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := database.Migrate(); err != nil {
				return err
			}

			slog.Info("Database migrations completed successfully")
			return nil
		},
	}
}
