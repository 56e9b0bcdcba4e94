// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blissfulweddings/blissful/internal/config"
	"github.com/blissfulweddings/blissful/pkg/errutil"
)

func TestParseForceVersion(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantVersion int
		wantErr     bool
	}{
		{name: "valid integer", input: "3", wantVersion: 3},
		{name: "zero is valid", input: "0", wantVersion: 0},
		{name: "surrounding whitespace is trimmed", input: "  42 ", wantVersion: 42},
		{name: "non-numeric", input: "abc", wantErr: true},
		{name: "float", input: "1.5", wantErr: true},
		{name: "trailing characters", input: "3abc", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseForceVersion(tt.input)
			if tt.wantErr {
				errutil.AssertErrorCode(t, err, "INVALID_VERSION")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, got)
		})
	}
}

// fakeMigrator records calls made by the migrate subcommands.
type fakeMigrator struct {
	pending  []uint
	applied  []uint
	steps    []int
	version  uint
	dirty    bool
	forced   []int
	upCalls  int
	downErr  error
	closed   bool
	closeErr error
}

func (m *fakeMigrator) Up() error {
	m.upCalls++
	return nil
}

func (m *fakeMigrator) Down() error { return m.downErr }

func (m *fakeMigrator) Steps(n int) error {
	m.steps = append(m.steps, n)
	return nil
}

func (m *fakeMigrator) Version() (uint, bool, error) { return m.version, m.dirty, nil }

func (m *fakeMigrator) Force(version int) error {
	m.forced = append(m.forced, version)
	return nil
}

func (m *fakeMigrator) PendingMigrations() ([]uint, error) { return m.pending, nil }

func (m *fakeMigrator) AppliedMigrations() ([]uint, error) { return m.applied, nil }

func (m *fakeMigrator) Close() error {
	m.closed = true
	return m.closeErr
}

func runMigrate(t *testing.T, m *fakeMigrator, args ...string) (string, string, error) {
	t.Helper()
	var gotURL string
	deps := &MigrateDeps{
		ConfigLoader: func(opts config.LoadOptions) (*config.Config, error) {
			require.NotNil(t, opts.Check, "migrate must not require the full configuration")
			return &config.Config{Database: config.DatabaseConfig{URL: "postgres://app@localhost/blissful"}}, nil
		},
		MigratorFactory: func(url string) (SchemaMigrator, error) {
			gotURL = url
			return m, nil
		},
	}

	cmd := newMigrateCmd(deps)
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), gotURL, err
}

func TestMigrateCommand_Up(t *testing.T) {
	t.Run("applies pending", func(t *testing.T) {
		m := &fakeMigrator{pending: []uint{1, 2}}
		out, url, err := runMigrate(t, m, "up")

		require.NoError(t, err)
		assert.Equal(t, "postgres://app@localhost/blissful", url)
		assert.Equal(t, 1, m.upCalls)
		assert.Contains(t, out, "Applying 2 migration(s)")
		assert.True(t, m.closed)
	})

	t.Run("nothing pending", func(t *testing.T) {
		m := &fakeMigrator{}
		out, _, err := runMigrate(t, m, "up")

		require.NoError(t, err)
		assert.Zero(t, m.upCalls)
		assert.Contains(t, out, "Schema is up to date")
	})

	t.Run("steps limits how many are applied", func(t *testing.T) {
		m := &fakeMigrator{pending: []uint{1, 2}}
		out, _, err := runMigrate(t, m, "up", "--steps", "1")

		require.NoError(t, err)
		assert.Equal(t, []int{1}, m.steps)
		assert.Zero(t, m.upCalls)
		assert.Contains(t, out, "Applying 1 of 2 pending migration(s)")
	})

	t.Run("steps beyond pending applies all", func(t *testing.T) {
		m := &fakeMigrator{pending: []uint{2}}
		_, _, err := runMigrate(t, m, "up", "--steps", "5")

		require.NoError(t, err)
		assert.Empty(t, m.steps)
		assert.Equal(t, 1, m.upCalls)
	})

	t.Run("negative steps never opens the database", func(t *testing.T) {
		m := &fakeMigrator{pending: []uint{1}}
		_, url, err := runMigrate(t, m, "up", "--steps", "-1")

		errutil.AssertErrorCode(t, err, "INVALID_STEPS")
		assert.Empty(t, url)
	})
}

func TestMigrateCommand_Down(t *testing.T) {
	m := &fakeMigrator{downErr: errors.New("boom")}
	_, _, err := runMigrate(t, m, "down")

	require.Error(t, err)
	assert.True(t, m.closed, "migrator closed after failure")
}

func TestMigrateCommand_DownSteps(t *testing.T) {
	m := &fakeMigrator{}
	out, _, err := runMigrate(t, m, "down", "--steps", "1")

	require.NoError(t, err)
	assert.Equal(t, []int{-1}, m.steps)
	assert.Contains(t, out, "Rolled back 1 migration(s)")
}

func TestMigrateCommand_Status(t *testing.T) {
	t.Run("lists applied and pending by name", func(t *testing.T) {
		m := &fakeMigrator{version: 1, applied: []uint{1}, pending: []uint{2}}
		out, _, err := runMigrate(t, m, "status")

		require.NoError(t, err)
		assert.Contains(t, out, "Version: 1\n")
		assert.Regexp(t, `applied\s+000001_accounts\n`, out)
		assert.Regexp(t, `pending\s+000002_accounts_updated_at\n`, out)
		assert.Contains(t, out, "1 applied, 1 pending")
		assert.True(t, m.closed)
	})

	t.Run("unknown version falls back to the number", func(t *testing.T) {
		m := &fakeMigrator{version: 99, dirty: true, applied: []uint{99}}
		out, _, err := runMigrate(t, m, "status")

		require.NoError(t, err)
		assert.Contains(t, out, "Version: 99 (dirty)")
		assert.Regexp(t, `applied\s+000099\n`, out)
	})
}

func TestMigrateCommand_Version(t *testing.T) {
	out, _, err := runMigrate(t, &fakeMigrator{version: 1, dirty: true}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: 1 (dirty)")
}

func TestMigrateCommand_Force(t *testing.T) {
	t.Run("valid version", func(t *testing.T) {
		m := &fakeMigrator{}
		out, _, err := runMigrate(t, m, "force", "1")

		require.NoError(t, err)
		assert.Equal(t, []int{1}, m.forced)
		assert.Contains(t, out, "Forced version 1")
	})

	t.Run("invalid version never opens the database", func(t *testing.T) {
		m := &fakeMigrator{}
		_, url, err := runMigrate(t, m, "force", "x")

		errutil.AssertErrorCode(t, err, "INVALID_VERSION")
		assert.Empty(t, url)
	})
}

func TestMigrateCommand_CloseErrorSurfaces(t *testing.T) {
	m := &fakeMigrator{version: 1, closeErr: errors.New("close failed")}
	_, _, err := runMigrate(t, m, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close failed")
}
