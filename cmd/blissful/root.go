// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package main

import (
	"github.com/spf13/cobra"
)

// serviceName labels logs and the observability endpoints.
const serviceName = "blissful"

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the blissful CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blissful",
		Short: "Blissful Weddings identity and access API",
		Long: `blissful serves the Blissful Weddings account API: direct and
SMS-verified registration, login, sessions and role management.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewAdminCmd())
	cmd.AddCommand(NewStatusCmd())

	return cmd
}
