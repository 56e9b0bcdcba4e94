// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/blissfulweddings/blissful/pkg/errutil"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "Failed to parse JSON: %s", buf.String())
	return entry
}

func TestSetup_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("api", "1.0.0", "json", "info", &buf)

	logger.Info("test message")

	entry := decode(t, &buf)
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "api", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Contains(t, entry, "time", "time field missing")
	assert.Contains(t, entry, "level", "level field missing")
}

func TestSetup_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("api", "1.0.0", "text", "info", &buf)

	logger.Info("test message")

	output := buf.String()
	assert.Contains(t, output, "test message", "Output missing message")
	assert.Contains(t, output, "api", "Output missing service")
}

func TestSetup_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("api", "1.0.0", "json", "info", &buf)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger = Setup("api", "1.0.0", "json", "debug", &buf)
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestHandler_TraceContext(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("api", "1.0.0", "json", "info", &buf)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	logger.InfoContext(ctx, "traced message")

	entry := decode(t, &buf)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entry["trace_id"])
	assert.Equal(t, "00f067aa0ba902b7", entry["span_id"])
}

func TestHandler_NoTraceContext(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("api", "1.0.0", "json", "info", &buf)

	logger.Info("no trace message")

	entry := decode(t, &buf)
	assert.NotContains(t, entry, "trace_id")
	assert.NotContains(t, entry, "span_id")
}

func TestHandler_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("api", "1.0.0", "json", "debug", &buf)

	logger.Info("request",
		"phone", "+15551234567",
		"otp", "123456",
		"password", "secret1",
		"Authorization", "Bearer abc",
		slog.Group("body", slog.String("password_hash", "$argon2id$..."), slog.String("email", "a@x.com")),
	)

	out := buf.String()
	assert.NotContains(t, out, "123456")
	assert.NotContains(t, out, "secret1")
	assert.NotContains(t, out, "Bearer abc")
	assert.NotContains(t, out, "$argon2id$")

	entry := decode(t, &buf)
	assert.Equal(t, "+15551234567", entry["phone"])
	assert.Equal(t, Redacted, entry["otp"])
	body, ok := entry["body"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, Redacted, body["password_hash"])
	assert.Equal(t, "a@x.com", body["email"])
}

func TestIsSecretKey(t *testing.T) {
	assert.True(t, IsSecretKey("password"))
	assert.True(t, IsSecretKey("twilio_auth_token"))
	assert.True(t, IsSecretKey("TOKEN"))
	assert.False(t, IsSecretKey("phone"))
	assert.False(t, IsSecretKey("token_count"))
	assert.True(t, IsSecretKey("verification_code"))
	assert.False(t, IsSecretKey("code"))
	assert.False(t, IsSecretKey("error_code"))
}

func TestHandler_KeepsErrorCodes(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("api", "1.0.0", "json", "info", &buf)

	errutil.LogError(logger, "request failed",
		errutil.Internal("CHALLENGE_SEND_FAILED", "failed to send verification code", errors.New("gateway down")))

	entry := decode(t, &buf)
	assert.Equal(t, "CHALLENGE_SEND_FAILED", entry["code"])
	assert.Equal(t, "internal", entry["kind"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("fatal"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}
