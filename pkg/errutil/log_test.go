// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package errutil_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blissfulweddings/blissful/pkg/errutil"
)

func decodeLog(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	return logEntry
}

func TestLogError_WithOopsError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := oops.Code("TEST_ERROR").
		With("key", "value").
		Errorf("something failed")

	errutil.LogError(logger, "operation failed", err)

	logEntry := decodeLog(t, &buf)
	assert.Equal(t, "ERROR", logEntry["level"])
	assert.Equal(t, "operation failed", logEntry["msg"])
	assert.Equal(t, "TEST_ERROR", logEntry["code"])
}

func TestLogError_WithStandardError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	errutil.LogError(logger, "operation failed", errors.New("standard error"))

	logEntry := decodeLog(t, &buf)
	assert.Equal(t, "ERROR", logEntry["level"])
	assert.Contains(t, logEntry["error"], "standard error")
}

func TestLogError_OperationalErrorLogsAtWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	errutil.LogError(logger, "register rejected",
		errutil.Conflict("ACCOUNT_EMAIL_TAKEN", "Email address is already registered.", "email"))

	logEntry := decodeLog(t, &buf)
	assert.Equal(t, "WARN", logEntry["level"])
	assert.Equal(t, "conflict", logEntry["kind"])
	assert.Equal(t, "email", logEntry["field"])
	assert.Equal(t, "ACCOUNT_EMAIL_TAKEN", logEntry["code"])
}

func TestLogError_InternalErrorKeepsCause(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := errutil.Internal("ACCOUNT_CREATE_FAILED", "Could not register account.", errors.New("connection reset"))
	errutil.LogError(logger, "register failed", err)

	logEntry := decodeLog(t, &buf)
	assert.Equal(t, "ERROR", logEntry["level"])
	assert.Equal(t, "internal", logEntry["kind"])
	assert.Contains(t, logEntry["error"], "connection reset")
}
