// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/blissfulweddings/blissful/internal/auth"
	"github.com/blissfulweddings/blissful/internal/auth/postgres"
	"github.com/blissfulweddings/blissful/internal/config"
	"github.com/blissfulweddings/blissful/internal/logging"
)

// minAdminPasswordLen matches the API's password rule.
const minAdminPasswordLen = 6

// adminCreateConfig holds flags for admin create.
type adminCreateConfig struct {
	email    string
	phone    string
	username string
	fullName string
}

// AdminDeps contains injectable dependencies for the admin command.
type AdminDeps struct {
	DatabaseDeps

	// PasswordReader obtains the new account's password.
	// Default: readPassword
	PasswordReader func(cmd *cobra.Command) (string, error)
}

func (d *AdminDeps) withDefaults() *AdminDeps {
	if d == nil {
		d = &AdminDeps{}
	}
	d.DatabaseDeps = *d.DatabaseDeps.withDefaults()
	if d.PasswordReader == nil {
		d.PasswordReader = readPassword
	}
	return d
}

// NewAdminCmd creates the admin command group.
func NewAdminCmd() *cobra.Command {
	return newAdminCmd(nil)
}

func newAdminCmd(deps *AdminDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative account tasks",
	}
	cmd.PersistentFlags().String("database-url", "", "PostgreSQL connection URL")

	cfg := &adminCreateConfig{}
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator account",
		Long: `Create an account with the admin role. The password is read from the
terminal without echo, or from the first line of stdin when it is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAdminCreate(cmd.Context(), cmd, cfg, deps)
		},
	}
	create.Flags().StringVar(&cfg.email, "email", "", "email address")
	create.Flags().StringVar(&cfg.phone, "phone", "", "phone number in E.164 format")
	create.Flags().StringVar(&cfg.username, "username", "", "username")
	create.Flags().StringVar(&cfg.fullName, "full-name", "", "display name")
	cmd.AddCommand(create)

	return cmd
}

func runAdminCreate(ctx context.Context, cmd *cobra.Command, cfg *adminCreateConfig, deps *AdminDeps) error {
	deps = deps.withDefaults()

	if cfg.email == "" && cfg.phone == "" {
		return oops.Code("ADMIN_CONTACT_REQUIRED").Errorf("--email or --phone is required")
	}

	conf, err := deps.ConfigLoader(config.LoadOptions{
		File:  configFile,
		Flags: cmd.Flags(),
		Check: (*config.Config).ValidateDatabase,
	})
	if err != nil {
		return oops.With("operation", "load configuration").Wrap(err)
	}
	logger := logging.Setup(serviceName, version, "text", conf.Log.Level, cmd.ErrOrStderr())

	password, err := deps.PasswordReader(cmd)
	if err != nil {
		return oops.Code("ADMIN_PASSWORD_READ_FAILED").Wrap(err)
	}
	if len(password) < minAdminPasswordLen {
		return oops.Code("ADMIN_PASSWORD_TOO_SHORT").
			Errorf("password must be at least %d characters long", minAdminPasswordLen)
	}

	db, err := deps.DatabaseOpener(ctx, conf.Database.URL, poolOptions(conf.Database), logger)
	if err != nil {
		return oops.With("operation", "connect to database").Wrap(err)
	}
	defer db.Close()

	authDeps := auth.Deps{
		Accounts: postgres.NewAccountRepository(db),
		Hasher:   auth.NewArgon2idHasher(),
		Logger:   logger,
	}
	registration, err := auth.NewRegistrationService(authDeps)
	if err != nil {
		return err
	}
	profiles, err := auth.NewProfileService(authDeps)
	if err != nil {
		return err
	}

	created, err := registration.Register(ctx, auth.RegisterInput{
		Email:       optional(cfg.email),
		Phone:       optional(cfg.phone),
		Password:    password,
		DisplayName: optional(cfg.fullName),
		Username:    optional(cfg.username),
	})
	if err != nil {
		return err
	}
	admin, err := profiles.ChangeRole(ctx, created.ID, string(auth.RoleAdmin))
	if err != nil {
		return oops.With("account_id", created.ID).Wrap(err)
	}

	cmd.Printf("Created admin account %d\n", admin.ID)
	return nil
}

// readPassword prompts on a terminal or reads one line from stdin.
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		cmd.Print("Password: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		cmd.Println()
		if err != nil {
			return "", err
		}
		cmd.Print("Confirm password: ")
		confirm, err := term.ReadPassword(int(f.Fd()))
		cmd.Println()
		if err != nil {
			return "", err
		}
		if string(raw) != string(confirm) {
			return "", oops.Code("ADMIN_PASSWORD_MISMATCH").Errorf("passwords do not match")
		}
		return string(raw), nil
	}
	return readLine(in)
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
