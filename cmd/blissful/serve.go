// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blissfulweddings/blissful/internal/auth"
	"github.com/blissfulweddings/blissful/internal/auth/postgres"
	"github.com/blissfulweddings/blissful/internal/auth/redisstore"
	"github.com/blissfulweddings/blissful/internal/config"
	"github.com/blissfulweddings/blissful/internal/logging"
	"github.com/blissfulweddings/blissful/internal/observability"
	"github.com/blissfulweddings/blissful/internal/sms"
	"github.com/blissfulweddings/blissful/internal/throttle"
	"github.com/blissfulweddings/blissful/internal/web"
)

// readHeaderTimeout bounds how long a client may take to send headers.
const readHeaderTimeout = 5 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the account API server",
		Long: `Start the HTTP API together with the observability listener.
Configuration is read from defaults, the --config file, BLISSFUL_* environment
variables and the flags below, in that order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServeWithDeps(cmd.Context(), cmd, nil)
		},
	}

	defaults := config.Defaults()
	str := func(key string) string {
		s, _ := defaults[key].(string)
		return s
	}

	cmd.Flags().String("env", str("env"), "runtime environment (development or production)")
	cmd.Flags().String("addr", str("http.addr"), "API listen address")
	cmd.Flags().String("metrics-addr", str("metrics.addr"), "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().String("log-format", str("log.format"), "log format (json or text)")
	cmd.Flags().String("log-level", str("log.level"), "log level (debug, info, warn, error)")
	cmd.Flags().String("database-url", "", "PostgreSQL connection URL")
	cmd.Flags().String("redis-addr", str("redis.addr"), "Redis address")
	cmd.Flags().String("sms-provider", str("sms.provider"), "SMS provider (twilio or console)")

	return cmd
}

// runServeWithDeps starts the API with injectable dependencies.
// If deps is nil, default implementations are used.
func runServeWithDeps(ctx context.Context, cmd *cobra.Command, deps *ServeDeps) error {
	deps = deps.withDefaults()

	cfg, err := deps.ConfigLoader(config.LoadOptions{File: configFile, Flags: cmd.Flags()})
	if err != nil {
		return oops.With("operation", "load configuration").Wrap(err)
	}

	logger := logging.Setup(serviceName, version, cfg.Log.Format, cfg.Log.Level, deps.LogWriter)
	slog.SetDefault(logger)
	logger.Info("starting blissful", "config", cfg)

	db, err := deps.DatabaseOpener(ctx, cfg.Database.URL, poolOptions(cfg.Database), logger)
	if err != nil {
		return oops.With("operation", "connect to database").Wrap(err)
	}
	defer db.Close()
	logger.Info("connected to database")

	rdb := deps.RedisFactory(cfg.Redis)
	defer func() {
		if closeErr := rdb.Close(); closeErr != nil {
			logger.Debug("error closing redis client", "error", closeErr)
		}
	}()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return oops.Code("REDIS_CONNECT_FAILED").With("addr", cfg.Redis.Addr).Wrap(err)
	}
	logger.Info("connected to redis", "addr", cfg.Redis.Addr)

	var obsServer ObservabilityServer
	var metrics *observability.Metrics
	if cfg.Metrics.Addr != "" {
		obsServer = deps.ObservabilityServerFactory(cfg.Metrics.Addr, map[string]observability.ReadinessCheck{
			"postgres": db.Ping,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
		metrics = obsServer.Metrics()
	}

	handler, err := buildAPI(cmd, cfg, db, rdb, deps, logger, metrics)
	if err != nil {
		return err
	}

	listener, err := deps.ListenerFactory("tcp", cfg.HTTP.Addr)
	if err != nil {
		return oops.Code("HTTP_LISTEN_FAILED").With("addr", cfg.HTTP.Addr).Wrap(err)
	}
	apiServer := &http.Server{
		Handler:           handler,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	var obsErrChan <-chan error
	if obsServer != nil {
		obsErrChan, err = obsServer.Start()
		if err != nil {
			_ = listener.Close()
			return oops.With("operation", "start observability server").Wrap(err)
		}
		logger.Info("observability server started", "addr", obsServer.Addr())
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("api server listening", "addr", listener.Addr().String())
		if serveErr := apiServer.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return oops.Code("HTTP_SERVE_FAILED").Wrap(serveErr)
		}
		return nil
	})

	if obsErrChan != nil {
		g.Go(func() error {
			select {
			case obsErr, ok := <-obsErrChan:
				if ok && obsErr != nil {
					return oops.Code("OBSERVABILITY_SERVE_FAILED").Wrap(obsErr)
				}
			case <-gctx.Done():
			}
			return nil
		})
	}

	g.Go(func() error {
		select {
		case sig := <-sigChan:
			logger.Info("received shutdown signal", "signal", sig.String())
		case <-gctx.Done():
			logger.Info("context cancelled, shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("error stopping api server", "error", err)
		}
		if obsServer != nil {
			if err := obsServer.Stop(shutdownCtx); err != nil {
				logger.Warn("error stopping observability server", "error", err)
			}
		}
		return nil
	})

	cmd.Println("Blissful API started")
	err = g.Wait()
	logger.Info("shutdown complete")
	return err
}

// buildAPI wires the identity services behind the HTTP handler.
func buildAPI(
	cmd *cobra.Command,
	cfg *config.Config,
	db Database,
	rdb redis.UniversalClient,
	deps *ServeDeps,
	logger *slog.Logger,
	metrics *observability.Metrics,
) (http.Handler, error) {
	gateway, err := deps.GatewayFactory(cfg.SMS, cmd.OutOrStdout())
	if err != nil {
		return nil, oops.With("operation", "create sms gateway").Wrap(err)
	}
	sender, err := sms.NewDispatcher(gateway, logger.With("component", "sms"), metrics)
	if err != nil {
		return nil, err
	}

	issuer, err := auth.NewJWTIssuer(cfg.Token.Secret)
	if err != nil {
		return nil, err
	}

	authDeps := auth.Deps{
		Accounts:   postgres.NewAccountRepository(db),
		Transactor: postgres.NewTransactor(db),
		Codes:      redisstore.NewCodeStore(rdb, redisstore.DefaultPrefix),
		Sender:     sender,
		Hasher:     auth.NewArgon2idHasher(),
		Tokens:     issuer,
		Logger:     logger.With("component", "auth"),
		Metrics:    metrics,
	}

	var svc web.Services
	if svc.Registration, err = auth.NewRegistrationService(authDeps); err != nil {
		return nil, err
	}
	if svc.Challenges, err = auth.NewChallengeService(authDeps); err != nil {
		return nil, err
	}
	if svc.Login, err = auth.NewLoginService(authDeps); err != nil {
		return nil, err
	}
	if svc.Profiles, err = auth.NewProfileService(authDeps); err != nil {
		return nil, err
	}
	if svc.Authenticator, err = auth.NewAuthenticator(authDeps); err != nil {
		return nil, err
	}

	var limiter *throttle.Limiter
	if cfg.Throttle.Enabled {
		limiter, err = throttle.NewLimiter(rdb, logger.With("component", "throttle"), metrics)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Warn("request throttling is disabled")
	}

	server, err := web.NewServer(web.Options{
		Production: cfg.IsProduction(),
		TrustProxy: cfg.Throttle.TrustProxy,
	}, svc, limiter, logger.With("component", "http"), metrics)
	if err != nil {
		return nil, err
	}
	return server.Handler(), nil
}
