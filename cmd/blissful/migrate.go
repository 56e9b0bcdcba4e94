// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/blissfulweddings/blissful/internal/config"
	"github.com/blissfulweddings/blissful/internal/store"
)

// SchemaMigrator wraps the methods used from store.Migrator.
type SchemaMigrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Version() (version uint, dirty bool, err error)
	Force(version int) error
	PendingMigrations() ([]uint, error)
	AppliedMigrations() ([]uint, error)
	Close() error
}

// MigrateDeps contains injectable dependencies for the migrate command.
type MigrateDeps struct {
	// ConfigLoader loads configuration.
	// Default: config.Load
	ConfigLoader func(opts config.LoadOptions) (*config.Config, error)

	// MigratorFactory opens a migrator for a database URL.
	// Default: store.NewMigrator
	MigratorFactory func(databaseURL string) (SchemaMigrator, error)
}

func (d *MigrateDeps) withDefaults() *MigrateDeps {
	if d == nil {
		d = &MigrateDeps{}
	}
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.Load
	}
	if d.MigratorFactory == nil {
		d.MigratorFactory = func(databaseURL string) (SchemaMigrator, error) {
			m, err := store.NewMigrator(databaseURL)
			if err != nil {
				return nil, err
			}
			return m, nil
		}
	}
	return d
}

// NewMigrateCmd creates the migrate command group.
func NewMigrateCmd() *cobra.Command {
	return newMigrateCmd(nil)
}

func newMigrateCmd(deps *MigrateDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
		Long: `Apply, roll back or inspect the account schema migrations.
Only database.url is required; set it with DATABASE_URL or the config file.`,
	}
	cmd.PersistentFlags().String("database-url", "", "PostgreSQL connection URL")

	var upSteps int
	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if upSteps < 0 {
				return invalidSteps(upSteps)
			}
			return withMigrator(cmd, deps, func(m SchemaMigrator) error {
				pending, err := m.PendingMigrations()
				if err != nil {
					return err
				}
				if len(pending) == 0 {
					cmd.Println("Schema is up to date")
					return nil
				}
				if upSteps > 0 && upSteps < len(pending) {
					cmd.Printf("Applying %d of %d pending migration(s)...\n", upSteps, len(pending))
					if err := m.Steps(upSteps); err != nil {
						return err
					}
				} else {
					cmd.Printf("Applying %d migration(s)...\n", len(pending))
					if err := m.Up(); err != nil {
						return err
					}
				}
				cmd.Println("Migrations completed successfully")
				return nil
			})
		},
	}
	up.Flags().IntVar(&upSteps, "steps", 0, "apply at most this many migrations (0 applies all)")
	cmd.AddCommand(up)

	var downSteps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Long: `Roll back every applied migration, or only the last --steps of them.
Rolling back the first migration drops the accounts table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if downSteps < 0 {
				return invalidSteps(downSteps)
			}
			return withMigrator(cmd, deps, func(m SchemaMigrator) error {
				if downSteps > 0 {
					if err := m.Steps(-downSteps); err != nil {
						return err
					}
					cmd.Printf("Rolled back %d migration(s)\n", downSteps)
					return nil
				}
				if err := m.Down(); err != nil {
					return err
				}
				cmd.Println("All migrations rolled back")
				return nil
			})
		},
	}
	down.Flags().IntVar(&downSteps, "steps", 0, "roll back only this many migrations (0 rolls back all)")
	cmd.AddCommand(down)

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, deps, func(m SchemaMigrator) error {
				return printMigrationStatus(cmd, m)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, deps, func(m SchemaMigrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				if dirty {
					cmd.Printf("Version: %d (dirty)\n", version)
					return nil
				}
				cmd.Printf("Version: %d\n", version)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "force VERSION",
		Short: "Mark VERSION as applied without running it",
		Long: `Record VERSION as the current schema version and clear the dirty
flag. Use it only after repairing a failed migration by hand.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := parseForceVersion(args[0])
			if err != nil {
				return err
			}
			return withMigrator(cmd, deps, func(m SchemaMigrator) error {
				if err := m.Force(version); err != nil {
					return err
				}
				cmd.Printf("Forced version %d\n", version)
				return nil
			})
		},
	})

	return cmd
}

// withMigrator loads the database URL, opens a migrator, runs fn and closes it.
func withMigrator(cmd *cobra.Command, deps *MigrateDeps, fn func(SchemaMigrator) error) (err error) {
	deps = deps.withDefaults()

	cfg, err := deps.ConfigLoader(config.LoadOptions{
		File:  configFile,
		Flags: cmd.Flags(),
		Check: (*config.Config).ValidateDatabase,
	})
	if err != nil {
		return oops.With("operation", "load configuration").Wrap(err)
	}

	m, err := deps.MigratorFactory(cfg.Database.URL)
	if err != nil {
		return oops.Code("MIGRATION_INIT_FAILED").With("operation", "open migrator").Wrap(err)
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(m)
}

// printMigrationStatus prints the schema version followed by one line per
// embedded migration.
func printMigrationStatus(cmd *cobra.Command, m SchemaMigrator) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	applied, err := m.AppliedMigrations()
	if err != nil {
		return err
	}
	pending, err := m.PendingMigrations()
	if err != nil {
		return err
	}

	state := ""
	if dirty {
		state = " (dirty)"
	}
	cmd.Printf("Version: %d%s\n", version, state)

	line := func(v uint, status string) error {
		name, err := store.MigrationName(v)
		if err != nil {
			return err
		}
		if name == "" {
			name = fmt.Sprintf("%06d", v)
		}
		cmd.Printf("  %-8s %s\n", status, name)
		return nil
	}
	for _, v := range applied {
		if err := line(v, "applied"); err != nil {
			return err
		}
	}
	for _, v := range pending {
		if err := line(v, "pending"); err != nil {
			return err
		}
	}
	cmd.Printf("%d applied, %d pending\n", len(applied), len(pending))
	return nil
}

func invalidSteps(n int) error {
	return oops.Code("INVALID_STEPS").With("steps", n).Errorf("invalid --steps %d: must be a non-negative integer", n)
}

// parseForceVersion parses the force target.
func parseForceVersion(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	version, err := strconv.Atoi(trimmed)
	if err != nil || version < 0 {
		return 0, oops.Code("INVALID_VERSION").
			With("input", s).
			Errorf("invalid version %q: must be a non-negative integer", s)
	}
	return version, nil
}
