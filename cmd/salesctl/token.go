package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sales-tracker/backend/config"
	"github.com/sales-tracker/backend/internal/integration/adapters"
)

// newTokenCommand signs a development access token with the configured secret.
func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a development access token for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rawUserID, _ := cmd.Flags().GetString("user")
			email, _ := cmd.Flags().GetString("email")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			userID, err := uuid.Parse(rawUserID)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			cfg := config.Load()
			token, err := adapters.SignAccessToken(cfg.JWT.Secret, cfg.JWT.Issuer, userID, email, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("user", "", "User UUID placed in the sub claim")
	cmd.Flags().String("email", "", "Optional email claim")
	cmd.Flags().Duration("ttl", time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
