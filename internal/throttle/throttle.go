// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

// Package throttle implements fixed-window request limits backed by Redis.
package throttle

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"

	"github.com/blissfulweddings/blissful/internal/observability"
)

// DefaultPrefix is prepended to every counter key.
const DefaultPrefix = "throttle:"

// Guard is a named limit of Limit requests per Window for one origin.
type Guard struct {
	Name    string
	Limit   int
	Window  time.Duration
	Message string
}

// Guards applied to the HTTP surface.
var (
	General = Guard{
		Name:    "general",
		Limit:   100,
		Window:  15 * time.Minute,
		Message: "Too many requests from this IP, please try again after 15 minutes.",
	}
	Sensitive = Guard{
		Name:    "sensitive",
		Limit:   10,
		Window:  15 * time.Minute,
		Message: "Too many attempts, please try again later.",
	}
	Challenge = Guard{
		Name:    "challenge",
		Limit:   5,
		Window:  time.Hour,
		Message: "Too many verification code requests. Please try again later.",
	}
)

// Decision is the outcome of counting one request.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// Reset is the time left until the window rolls over.
	Reset time.Duration
}

// hitScript counts a hit and starts the window on the first one. A key left
// without an expiry is given one so the window always rolls over.
var hitScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// Limiter counts requests per guard and origin.
type Limiter struct {
	client  redis.Scripter
	prefix  string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLimiter creates a Limiter. metrics may be nil.
func NewLimiter(client redis.Scripter, logger *slog.Logger, metrics *observability.Metrics) (*Limiter, error) {
	if client == nil {
		return nil, oops.Code("THROTTLE_INVALID_DEPENDENCY").Errorf("redis client is required")
	}
	if logger == nil {
		return nil, oops.Code("THROTTLE_INVALID_DEPENDENCY").Errorf("logger is required")
	}
	return &Limiter{client: client, prefix: DefaultPrefix, logger: logger, metrics: metrics}, nil
}

// Key returns the Redis key counting origin under g.
func (l *Limiter) Key(g Guard, origin string) string {
	return l.prefix + g.Name + ":" + origin
}

// Hit counts one request from origin against g.
func (l *Limiter) Hit(ctx context.Context, g Guard, origin string) (Decision, error) {
	res, err := hitScript.Run(ctx, l.client, []string{l.Key(g, origin)}, g.Window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, oops.Code("THROTTLE_UNAVAILABLE").With("guard", g.Name).Wrap(err)
	}
	if len(res) != 2 {
		return Decision{}, oops.Code("THROTTLE_UNAVAILABLE").With("guard", g.Name).Errorf("unexpected script result %v", res)
	}

	count := int(res[0])
	d := Decision{
		Allowed:   count <= g.Limit,
		Limit:     g.Limit,
		Remaining: max(g.Limit-count, 0),
		Reset:     time.Duration(res[1]) * time.Millisecond,
	}

	result := "allowed"
	if !d.Allowed {
		result = "limited"
	}
	l.metrics.RecordThrottle(g.Name, result)
	return d, nil
}
