// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

// Package config loads layered service configuration.
//
// Sources are applied in order, later ones winning: built-in defaults, an
// optional YAML file, environment variables and finally command-line flags.
// Environment variables use the BLISSFUL_ prefix with "__" separating nested
// keys, e.g. BLISSFUL_DATABASE__URL sets database.url.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "BLISSFUL_"

// Environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// SMS providers.
const (
	SMSProviderTwilio  = "twilio"
	SMSProviderConsole = "console"
)

// MinTokenSecretLen is the shortest accepted signing secret.
const MinTokenSecretLen = 10

// Config is the validated service configuration.
type Config struct {
	Env      string         `koanf:"env"`
	HTTP     HTTPConfig     `koanf:"http"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Log      LogConfig      `koanf:"log"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Token    TokenConfig    `koanf:"token"`
	SMS      SMSConfig      `koanf:"sms"`
	Throttle ThrottleConfig `koanf:"throttle"`
}

// HTTPConfig configures the public API listener.
type HTTPConfig struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// MetricsConfig configures the observability listener. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `koanf:"addr"`
}

// LogConfig selects the log format and level.
type LogConfig struct {
	Format string `koanf:"format"`
	Level  string `koanf:"level"`
}

// DatabaseConfig configures the PostgreSQL pool.
type DatabaseConfig struct {
	URL          string `koanf:"url"`
	MaxConns     int32  `koanf:"max_conns"`
	ConnectRetry int    `koanf:"connect_retry"`
}

// RedisConfig configures the Redis client shared by the code store and throttle.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// TokenConfig holds the session signing secret.
type TokenConfig struct {
	Secret string `koanf:"secret"`
}

// SMSConfig selects and configures the message gateway.
type SMSConfig struct {
	Provider string       `koanf:"provider"`
	From     string       `koanf:"from"`
	Twilio   TwilioConfig `koanf:"twilio"`
}

// TwilioConfig holds Twilio REST credentials.
type TwilioConfig struct {
	AccountSID string `koanf:"account_sid"`
	AuthToken  string `koanf:"auth_token"`
}

// ThrottleConfig toggles abuse throttling.
type ThrottleConfig struct {
	Enabled bool `koanf:"enabled"`
	// TrustProxy derives the caller origin from X-Forwarded-For.
	TrustProxy bool `koanf:"trust_proxy"`
}

// Defaults returns the built-in configuration layer.
func Defaults() map[string]any {
	return map[string]any{
		"env":                    EnvDevelopment,
		"http.addr":              ":5000",
		"http.read_timeout":      "15s",
		"http.write_timeout":     "15s",
		"http.shutdown_timeout":  "10s",
		"metrics.addr":           "127.0.0.1:9100",
		"log.format":             "json",
		"log.level":              "info",
		"database.url":           "",
		"database.max_conns":     10,
		"database.connect_retry": 5,
		"redis.addr":             "localhost:6379",
		"redis.password":         "",
		"redis.db":               0,
		"token.secret":           "",
		"sms.provider":           SMSProviderConsole,
		"sms.from":               "",
		"sms.twilio.account_sid": "",
		"sms.twilio.auth_token":  "",
		"throttle.enabled":       true,
		"throttle.trust_proxy":   false,
	}
}

// envAliases maps conventional unprefixed variables onto config keys.
var envAliases = map[string]string{
	"DATABASE_URL":        "database.url",
	"REDIS_ADDR":          "redis.addr",
	"JWT_SECRET":          "token.secret",
	"TWILIO_ACCOUNT_SID":  "sms.twilio.account_sid",
	"TWILIO_AUTH_TOKEN":   "sms.twilio.auth_token",
	"TWILIO_PHONE_NUMBER": "sms.from",
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"env":          "env",
	"addr":         "http.addr",
	"metrics-addr": "metrics.addr",
	"log-format":   "log.format",
	"log-level":    "log.level",
	"database-url": "database.url",
	"redis-addr":   "redis.addr",
	"sms-provider": "sms.provider",
}

// LoadOptions controls which layers Load reads.
type LoadOptions struct {
	// File is an optional YAML file path.
	File string
	// Flags, when set, are applied last. Only flags named in flagKeys are read.
	Flags *pflag.FlagSet
	// Check replaces the full Validate, for commands that need only part of
	// the configuration.
	Check func(*Config) error
}

// Load merges every configuration layer and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").With("layer", "defaults").Wrap(err)
	}

	if opts.File != "" {
		if err := k.Load(file.Provider(opts.File), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").
				With("layer", "file").
				With("path", opts.File).
				Wrap(err)
		}
	}

	aliases := env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		target, ok := envAliases[key]
		if !ok || value == "" {
			return "", nil
		}
		return target, value
	})
	if err := k.Load(aliases, nil); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").With("layer", "env aliases").Wrap(err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").With("layer", "env").Wrap(err)
	}

	if opts.Flags != nil {
		fp := posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(opts.Flags, f)
		})
		if err := k.Load(fp, nil); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("layer", "flags").Wrap(err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_DECODE_FAILED").Wrap(err)
	}
	check := opts.Check
	if check == nil {
		check = (*Config).Validate
	}
	if err := check(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey turns BLISSFUL_DATABASE__MAX_CONNS into database.max_conns.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	invalid := func(key, format string, args ...any) error {
		return oops.Code("CONFIG_INVALID").With("key", key).Errorf(format, args...)
	}

	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		return invalid("env", "env must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env)
	}
	if c.HTTP.Addr == "" {
		return invalid("http.addr", "http.addr is required")
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return invalid("log.format", "log.format must be 'json' or 'text', got %q", c.Log.Format)
	}
	if c.Database.URL == "" {
		return invalid("database.url", "database.url is required (set DATABASE_URL or %sDATABASE__URL)", EnvPrefix)
	}
	if c.Redis.Addr == "" {
		return invalid("redis.addr", "redis.addr is required")
	}
	if len(c.Token.Secret) < MinTokenSecretLen {
		return invalid("token.secret", "token.secret must be at least %d characters", MinTokenSecretLen)
	}
	switch c.SMS.Provider {
	case SMSProviderConsole:
		if c.Env == EnvProduction {
			return invalid("sms.provider", "the console SMS provider is not allowed in production")
		}
	case SMSProviderTwilio:
		if c.SMS.Twilio.AccountSID == "" || c.SMS.Twilio.AuthToken == "" || c.SMS.From == "" {
			return invalid("sms.twilio", "twilio requires sms.twilio.account_sid, sms.twilio.auth_token and sms.from")
		}
	default:
		return invalid("sms.provider", "sms.provider must be %q or %q, got %q", SMSProviderTwilio, SMSProviderConsole, c.SMS.Provider)
	}
	return nil
}

// ValidateDatabase checks only the settings a database-only command needs.
func (c *Config) ValidateDatabase() error {
	if c.Database.URL == "" {
		return oops.Code("CONFIG_INVALID").
			With("key", "database.url").
			Errorf("database.url is required (set DATABASE_URL or %sDATABASE__URL)", EnvPrefix)
	}
	return nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// LogValue renders the configuration without secrets.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", c.Env),
		slog.String("http_addr", c.HTTP.Addr),
		slog.String("metrics_addr", c.Metrics.Addr),
		slog.String("log_format", c.Log.Format),
		slog.String("log_level", c.Log.Level),
		slog.String("redis_addr", c.Redis.Addr),
		slog.String("sms_provider", c.SMS.Provider),
		slog.Bool("throttle_enabled", c.Throttle.Enabled),
	)
}
