// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package sms

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// ConsoleGateway writes messages to w instead of sending them. It is meant
// for local development and is refused in production by the config layer.
type ConsoleGateway struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleGateway creates a ConsoleGateway writing to w.
func NewConsoleGateway(w io.Writer) *ConsoleGateway {
	return &ConsoleGateway{w: w}
}

// Name implements Gateway.
func (g *ConsoleGateway) Name() string { return "console" }

// Send implements Gateway.
func (g *ConsoleGateway) Send(_ context.Context, destination, body string) (string, error) {
	id := "console-" + ulid.Make().String()

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, err := fmt.Fprintf(g.w, "[sms %s] to=%s %s\n", id, destination, body); err != nil {
		return "", oops.Code("SMS_CONSOLE_WRITE_FAILED").Wrap(err)
	}
	return id, nil
}
