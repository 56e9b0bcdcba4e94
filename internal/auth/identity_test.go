// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blissfulweddings/blissful/internal/auth"
)

func TestIdentityContext(t *testing.T) {
	_, ok := auth.IdentityFromContext(context.Background())
	assert.False(t, ok)

	ctx := auth.WithIdentity(context.Background(), &auth.Identity{AccountID: 4, Role: auth.RoleAdmin})
	id, ok := auth.IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(4), id.AccountID)
	assert.True(t, id.HasRole(auth.RoleAdmin))
	assert.False(t, id.HasRole(auth.RoleClient))

	var missing *auth.Identity
	assert.False(t, missing.HasRole(auth.RoleAdmin))
}
