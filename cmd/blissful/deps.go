// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package main

import (
	"context"
	"io"
	"log/slog"
	"net"

	"github.com/redis/go-redis/v9"

	"github.com/blissfulweddings/blissful/internal/auth/postgres"
	"github.com/blissfulweddings/blissful/internal/config"
	"github.com/blissfulweddings/blissful/internal/observability"
	"github.com/blissfulweddings/blissful/internal/sms"
	"github.com/blissfulweddings/blissful/internal/store"
)

// Database wraps the methods used from *pgxpool.Pool.
type Database interface {
	postgres.DB
	Ping(ctx context.Context) error
	Close()
}

// ObservabilityServer interface wraps the methods used from observability.Server.
type ObservabilityServer interface {
	Start() (<-chan error, error)
	Stop(ctx context.Context) error
	Addr() string
	Metrics() *observability.Metrics
}

// ServeDeps contains injectable dependencies for the serve command.
// All fields with nil values will use their default implementations.
type ServeDeps struct {
	// ConfigLoader loads and validates configuration.
	// Default: config.Load
	ConfigLoader func(opts config.LoadOptions) (*config.Config, error)

	// DatabaseOpener connects to PostgreSQL and waits until it answers.
	// Default: store.OpenPool
	DatabaseOpener func(ctx context.Context, dsn string, opts store.PoolOptions, logger *slog.Logger) (Database, error)

	// RedisFactory creates the Redis client shared by the code store and throttle.
	// Default: redis.NewClient
	RedisFactory func(cfg config.RedisConfig) redis.UniversalClient

	// GatewayFactory builds the SMS gateway selected by configuration.
	// Default: newGateway
	GatewayFactory func(cfg config.SMSConfig, console io.Writer) (sms.Gateway, error)

	// ObservabilityServerFactory creates an observability server.
	// Default: observability.NewServer
	ObservabilityServerFactory func(addr string, checks map[string]observability.ReadinessCheck) ObservabilityServer

	// ListenerFactory creates the API listener.
	// Default: net.Listen
	ListenerFactory func(network, address string) (net.Listener, error)

	// LogWriter receives log output.
	// Default: os.Stderr
	LogWriter io.Writer
}

// withDefaults fills every nil field with its default implementation.
func (d *ServeDeps) withDefaults() *ServeDeps {
	if d == nil {
		d = &ServeDeps{}
	}
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.Load
	}
	if d.DatabaseOpener == nil {
		d.DatabaseOpener = openDatabase
	}
	if d.RedisFactory == nil {
		d.RedisFactory = newRedisClient
	}
	if d.GatewayFactory == nil {
		d.GatewayFactory = newGateway
	}
	if d.ObservabilityServerFactory == nil {
		d.ObservabilityServerFactory = func(addr string, checks map[string]observability.ReadinessCheck) ObservabilityServer {
			return observability.NewServer(addr, checks)
		}
	}
	if d.ListenerFactory == nil {
		d.ListenerFactory = net.Listen
	}
	return d
}

// DatabaseDeps contains injectable dependencies for commands that only need
// PostgreSQL.
type DatabaseDeps struct {
	// ConfigLoader loads configuration. Commands pass a database-only check.
	// Default: config.Load
	ConfigLoader func(opts config.LoadOptions) (*config.Config, error)

	// DatabaseOpener connects to PostgreSQL.
	// Default: store.OpenPool
	DatabaseOpener func(ctx context.Context, dsn string, opts store.PoolOptions, logger *slog.Logger) (Database, error)
}

func (d *DatabaseDeps) withDefaults() *DatabaseDeps {
	if d == nil {
		d = &DatabaseDeps{}
	}
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.Load
	}
	if d.DatabaseOpener == nil {
		d.DatabaseOpener = openDatabase
	}
	return d
}

func openDatabase(ctx context.Context, dsn string, opts store.PoolOptions, logger *slog.Logger) (Database, error) {
	pool, err := store.OpenPool(ctx, dsn, opts, logger)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

func newRedisClient(cfg config.RedisConfig) redis.UniversalClient {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// newGateway returns the Twilio gateway or the console gateway writing to console.
func newGateway(cfg config.SMSConfig, console io.Writer) (sms.Gateway, error) {
	if cfg.Provider == config.SMSProviderTwilio {
		return sms.NewTwilioGateway(sms.TwilioConfig{
			AccountSID: cfg.Twilio.AccountSID,
			AuthToken:  cfg.Twilio.AuthToken,
			From:       cfg.From,
		})
	}
	return sms.NewConsoleGateway(console), nil
}

// poolOptions converts configuration into store pool options.
func poolOptions(cfg config.DatabaseConfig) store.PoolOptions {
	opts := store.DefaultPoolOptions()
	if cfg.MaxConns > 0 {
		opts.MaxConns = cfg.MaxConns
	}
	opts.ConnectRetry = cfg.ConnectRetry
	return opts
}
