// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package errutil

import (
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorCode asserts that err carries the given code, either as a tagged
// Error or as an oops error.
func AssertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if tagged, ok := As(err); ok {
		assert.Equal(t, code, tagged.Code)
		return
	}
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	assert.Equal(t, code, oopsErr.Code())
}

// AssertErrorContext asserts that err is an oops error with the given context key/value.
func AssertErrorContext(t *testing.T, err error, key string, value any) {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	ctx := oopsErr.Context()
	assert.Contains(t, ctx, key)
	assert.Equal(t, value, ctx[key])
}

// AssertKind asserts that err is a tagged Error of the given kind.
func AssertKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	tagged, ok := As(err)
	require.True(t, ok, "expected tagged error, got %T: %v", err, err)
	assert.Equal(t, kind, tagged.Kind, "unexpected kind for %q", tagged.Message)
}
