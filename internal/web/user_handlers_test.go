// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package web_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blissfulweddings/blissful/internal/auth"
	"github.com/blissfulweddings/blissful/pkg/errutil"
)

func TestAuthenticationGate(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		authErr error
		code    string
		message string
	}{
		{
			name:    "missing header",
			code:    auth.CodeTokenRequired,
			message: auth.MsgTokenRequired,
		},
		{
			name:    "wrong scheme",
			header:  "Basic dXNlcjpwYXNz",
			code:    auth.CodeTokenRequired,
			message: auth.MsgTokenRequired,
		},
		{
			name:    "empty bearer",
			header:  "Bearer   ",
			code:    auth.CodeTokenRequired,
			message: auth.MsgTokenRequired,
		},
		{
			name:    "expired",
			header:  "Bearer stale",
			authErr: errutil.Unauthorized(auth.CodeTokenExpired, auth.MsgTokenExpired),
			code:    auth.CodeTokenExpired,
			message: auth.MsgTokenExpired,
		},
		{
			name:    "tampered",
			header:  "Bearer forged",
			authErr: errutil.Unauthorized(auth.CodeTokenInvalid, auth.MsgTokenInvalid),
			code:    auth.CodeTokenInvalid,
			message: auth.MsgTokenInvalid,
		},
		{
			name:    "account deleted",
			header:  "Bearer orphan",
			authErr: errutil.Unauthorized(auth.CodeAccountMissing, auth.MsgAccountMissing),
			code:    auth.CodeAccountMissing,
			message: auth.MsgAccountMissing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.authn.err = tt.authErr
			handler := h.handler(t)

			req, _ := http.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec, env := serve(t, handler, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.code, env.Code)
			assert.Equal(t, tt.message, env.Message)
		})
	}
}

func TestGetMe(t *testing.T) {
	h := newHarness()
	h.profiles.me = func(_ context.Context, id int64) (*auth.AccountView, error) {
		assert.Equal(t, int64(7), id)
		return &auth.AccountView{ID: 7, Email: ptr("bride@example.com"), Role: auth.RoleClient}, nil
	}

	rec, env := do(t, h.handler(t), http.MethodGet, "/api/users/me", clientToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"email":"bride@example.com"`)
}

func TestUpdateMe(t *testing.T) {
	t.Run("updates profile fields", func(t *testing.T) {
		h := newHarness()
		h.profiles.updateMe = func(_ context.Context, id int64, u auth.ProfileUpdate) (*auth.AccountView, error) {
			assert.Equal(t, int64(7), id)
			assert.Equal(t, "Ann Lee", *u.DisplayName)
			assert.Nil(t, u.Username)
			return &auth.AccountView{ID: 7, DisplayName: u.DisplayName, Role: auth.RoleClient}, nil
		}

		rec, _ := do(t, h.handler(t), http.MethodPut, "/api/users/me", clientToken, `{"fullName":"Ann Lee"}`)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("username taken", func(t *testing.T) {
		h := newHarness()
		h.profiles.updateMe = func(context.Context, int64, auth.ProfileUpdate) (*auth.AccountView, error) {
			return nil, auth.ConflictFor(auth.FieldUsername)
		}

		rec, env := do(t, h.handler(t), http.MethodPut, "/api/users/me", clientToken, `{"username":"annlee"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, auth.CodeUsernameTaken, env.Code)
	})

	t.Run("short username", func(t *testing.T) {
		h := newHarness()
		rec, env := do(t, h.handler(t), http.MethodPut, "/api/users/me", clientToken, `{"username":"ab"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "username", env.Errors[0].Field)
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("client is forbidden", func(t *testing.T) {
		h := newHarness()
		rec, env := do(t, h.handler(t), http.MethodGet, "/api/users/42", clientToken, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, auth.CodeForbidden, env.Code)
		assert.Equal(t, auth.MsgForbidden, env.Message)
	})

	t.Run("admin reads any account", func(t *testing.T) {
		h := newHarness()
		h.profiles.get = func(_ context.Context, id int64) (*auth.AccountView, error) {
			assert.Equal(t, int64(42), id)
			return &auth.AccountView{ID: 42, Role: auth.RoleClient}, nil
		}

		rec, _ := do(t, h.handler(t), http.MethodGet, "/api/users/42", adminToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown account", func(t *testing.T) {
		h := newHarness()
		h.profiles.get = func(context.Context, int64) (*auth.AccountView, error) {
			return nil, errutil.NotFound(auth.CodeAccountNotFound, auth.MsgAccountNotFound)
		}

		rec, env := do(t, h.handler(t), http.MethodGet, "/api/users/42", adminToken, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, auth.MsgAccountNotFound, env.Message)
	})

	t.Run("id out of range", func(t *testing.T) {
		h := newHarness()
		rec, _ := do(t, h.handler(t), http.MethodGet, "/api/users/99999999999999999999", adminToken, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("admin changes a role", func(t *testing.T) {
		h := newHarness()
		h.profiles.changeRole = func(_ context.Context, id int64, role string) (*auth.AccountView, error) {
			assert.Equal(t, int64(42), id)
			assert.Equal(t, "admin", role)
			return &auth.AccountView{ID: 42, Role: auth.RoleAdmin}, nil
		}

		rec, env := do(t, h.handler(t), http.MethodPut, "/api/users/42/role", adminToken, `{"role":"admin"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, string(env.Data), `"role":"admin"`)
	})

	t.Run("unknown role rejected by schema", func(t *testing.T) {
		h := newHarness()
		rec, env := do(t, h.handler(t), http.MethodPut, "/api/users/42/role", adminToken, `{"role":"vendor"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "Role must be one of: client, admin", env.Errors[0].Message)
	})

	t.Run("missing identity is forbidden", func(t *testing.T) {
		h := newHarness()
		reached := false
		guarded := h.server(t).RequireRoles(auth.RoleAdmin)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			reached = true
		}))

		rec, env := do(t, guarded, http.MethodGet, "/api/users/42", "", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, auth.CodeForbidden, env.Code)
		assert.False(t, reached)
	})

	t.Run("client cannot change roles", func(t *testing.T) {
		h := newHarness()
		rec, _ := do(t, h.handler(t), http.MethodPut, "/api/users/7/role", clientToken, `{"role":"admin"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
