// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blissfulweddings/blissful/internal/auth"
	"github.com/blissfulweddings/blissful/pkg/errutil"
)

func newRegistration(t *testing.T, f *fixture) *auth.RegistrationService {
	t.Helper()
	svc, err := auth.NewRegistrationService(f.deps())
	require.NoError(t, err)
	return svc
}

func TestRegistrationService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates client account without exposing the hash", func(t *testing.T) {
		f := newFixture(t)
		svc := newRegistration(t, f)

		f.accounts.EXPECT().ExistsByEmail(mock.Anything, "alice@example.com").Return(false, nil)
		f.accounts.EXPECT().ExistsByPhone(mock.Anything, "+15551234567").Return(false, nil)
		f.accounts.EXPECT().ExistsByUsername(mock.Anything, "alice").Return(false, nil)
		f.hasher.EXPECT().Hash("s3cret!").Return("$argon2id$hash", nil)
		f.accounts.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *auth.Account) bool {
			return *a.Email == "alice@example.com" &&
				*a.Phone == "+15551234567" &&
				a.Role == auth.RoleClient &&
				a.PasswordHash == "$argon2id$hash" &&
				a.PhoneVerifiedAt == nil
		})).Run(func(_ context.Context, a *auth.Account) {
			a.ID = 11
		}).Return(nil)

		view, err := svc.Register(ctx, auth.RegisterInput{
			Email:    ptr("  Alice@Example.COM "),
			Phone:    ptr("+15551234567"),
			Password: "s3cret!",
			Username: ptr("alice"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), view.ID)
		assert.Equal(t, "alice@example.com", *view.Email)
		assert.Equal(t, auth.RoleClient, view.Role)

		body, err := json.Marshal(view)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "argon2id")
		assert.NotContains(t, string(body), "password")
	})

	t.Run("phone only signup skips email and username checks", func(t *testing.T) {
		f := newFixture(t)
		svc := newRegistration(t, f)

		f.accounts.EXPECT().ExistsByPhone(mock.Anything, "+15550000001").Return(false, nil)
		f.hasher.EXPECT().Hash("s3cret!").Return("hash", nil)
		f.accounts.EXPECT().Create(mock.Anything, mock.AnythingOfType("*auth.Account")).Return(nil)

		view, err := svc.Register(ctx, auth.RegisterInput{Phone: ptr("+15550000001"), Password: "s3cret!"})
		require.NoError(t, err)
		assert.Nil(t, view.Email)
	})

	t.Run("rejects signup with neither email nor phone", func(t *testing.T) {
		f := newFixture(t)
		svc := newRegistration(t, f)

		_, err := svc.Register(ctx, auth.RegisterInput{Email: ptr("   "), Password: "s3cret!"})
		require.Error(t, err)
		errutil.AssertKind(t, err, errutil.KindBadRequest)
		errutil.AssertErrorCode(t, err, auth.CodeIdentifierRequired)
	})

	t.Run("each taken field yields its own conflict", func(t *testing.T) {
		tests := []struct {
			name    string
			setup   func(f *fixture)
			code    string
			field   string
			message string
		}{
			{
				name: "email",
				setup: func(f *fixture) {
					f.accounts.EXPECT().ExistsByEmail(mock.Anything, "a@x.com").Return(true, nil)
				},
				code:    auth.CodeEmailTaken,
				field:   auth.FieldEmail,
				message: auth.MsgEmailTaken,
			},
			{
				name: "phone",
				setup: func(f *fixture) {
					f.accounts.EXPECT().ExistsByEmail(mock.Anything, "a@x.com").Return(false, nil)
					f.accounts.EXPECT().ExistsByPhone(mock.Anything, "+15551112222").Return(true, nil)
				},
				code:    auth.CodePhoneTaken,
				field:   auth.FieldPhone,
				message: auth.MsgPhoneTaken,
			},
			{
				name: "username",
				setup: func(f *fixture) {
					f.accounts.EXPECT().ExistsByEmail(mock.Anything, "a@x.com").Return(false, nil)
					f.accounts.EXPECT().ExistsByPhone(mock.Anything, "+15551112222").Return(false, nil)
					f.accounts.EXPECT().ExistsByUsername(mock.Anything, "ann").Return(true, nil)
				},
				code:    auth.CodeUsernameTaken,
				field:   auth.FieldUsername,
				message: auth.MsgUsernameTaken,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				svc := newRegistration(t, f)
				tt.setup(f)

				_, err := svc.Register(ctx, auth.RegisterInput{
					Email:    ptr("a@x.com"),
					Phone:    ptr("+15551112222"),
					Password: "s3cret!",
					Username: ptr("ann"),
				})
				require.Error(t, err)
				tagged, ok := errutil.As(err)
				require.True(t, ok)
				assert.Equal(t, errutil.KindConflict, tagged.Kind)
				assert.Equal(t, tt.code, tagged.Code)
				assert.Equal(t, tt.field, tagged.Field)
				assert.Equal(t, tt.message, tagged.Message)
			})
		}
	})

	t.Run("store level duplicate maps to the same conflict", func(t *testing.T) {
		f := newFixture(t)
		svc := newRegistration(t, f)

		f.accounts.EXPECT().ExistsByEmail(mock.Anything, "a@x.com").Return(false, nil)
		f.hasher.EXPECT().Hash("s3cret!").Return("hash", nil)
		f.accounts.EXPECT().Create(mock.Anything, mock.Anything).
			Return(&auth.DuplicateError{Field: auth.FieldEmail, Err: errors.New("23505")})

		_, err := svc.Register(ctx, auth.RegisterInput{Email: ptr("a@x.com"), Password: "s3cret!"})
		require.Error(t, err)
		errutil.AssertKind(t, err, errutil.KindConflict)
		errutil.AssertErrorCode(t, err, auth.CodeEmailTaken)
	})

	t.Run("empty password is a bad request", func(t *testing.T) {
		f := newFixture(t)
		svc := newRegistration(t, f)

		f.accounts.EXPECT().ExistsByEmail(mock.Anything, "a@x.com").Return(false, nil)
		f.hasher.EXPECT().Hash("").Return("", auth.ErrEmptyPassword)

		_, err := svc.Register(ctx, auth.RegisterInput{Email: ptr("a@x.com")})
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, auth.CodePasswordRequired)
	})

	t.Run("repository failures are internal", func(t *testing.T) {
		f := newFixture(t)
		svc := newRegistration(t, f)

		f.accounts.EXPECT().ExistsByEmail(mock.Anything, "a@x.com").Return(false, errors.New("connection reset"))

		_, err := svc.Register(ctx, auth.RegisterInput{Email: ptr("a@x.com"), Password: "s3cret!"})
		require.Error(t, err)
		errutil.AssertKind(t, err, errutil.KindInternal)
		errutil.AssertErrorCode(t, err, "ACCOUNT_LOOKUP_FAILED")
	})

	t.Run("hashing failure is internal", func(t *testing.T) {
		f := newFixture(t)
		svc := newRegistration(t, f)

		f.accounts.EXPECT().ExistsByEmail(mock.Anything, "a@x.com").Return(false, nil)
		f.hasher.EXPECT().Hash("s3cret!").Return("", errors.New("entropy exhausted"))

		_, err := svc.Register(ctx, auth.RegisterInput{Email: ptr("a@x.com"), Password: "s3cret!"})
		require.Error(t, err)
		errutil.AssertKind(t, err, errutil.KindInternal)
		errutil.AssertErrorCode(t, err, "PASSWORD_HASH_FAILED")
	})
}
