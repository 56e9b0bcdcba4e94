// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/blissfulweddings/blissful/internal/observability"
	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// RegisterInput is a direct signup request.
type RegisterInput struct {
	Email       *string
	Phone       *string
	Password    string
	DisplayName *string
	Username    *string
}

// RegistrationService creates accounts from direct signups.
type RegistrationService struct {
	accounts AccountRepository
	hasher   PasswordHasher
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewRegistrationService creates a RegistrationService.
func NewRegistrationService(d Deps) (*RegistrationService, error) {
	if err := d.check(needAccounts | needHasher); err != nil {
		return nil, err
	}
	return &RegistrationService{
		accounts: d.Accounts,
		hasher:   d.Hasher,
		logger:   d.Logger,
		metrics:  d.Metrics,
	}, nil
}

// Register creates a client account. Each taken email, phone or username
// yields a Conflict naming the field.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (view *AccountView, err error) {
	ctx, span := startSpan(ctx, "RegistrationService.Register",
		attribute.Bool("has_email", in.Email != nil),
		attribute.Bool("has_phone", in.Phone != nil))
	defer func() {
		endSpan(span, err)
		s.metrics.RecordAuthEvent("register", outcome(err))
	}()

	email := normalizeEmail(in.Email)
	phone := trimmed(in.Phone)
	username := trimmed(in.Username)
	if email == nil && phone == nil {
		return nil, errutil.BadRequest(CodeIdentifierRequired, "Either an email address or a phone number is required.")
	}

	checks := []struct {
		value *string
		field string
		exist func(context.Context, string) (bool, error)
	}{
		{email, FieldEmail, s.accounts.ExistsByEmail},
		{phone, FieldPhone, s.accounts.ExistsByPhone},
		{username, FieldUsername, s.accounts.ExistsByUsername},
	}
	for _, c := range checks {
		if c.value == nil {
			continue
		}
		taken, err := c.exist(ctx, *c.value)
		if err != nil {
			return nil, errutil.Internal("ACCOUNT_LOOKUP_FAILED", "failed to check "+c.field+" availability", err)
		}
		if taken {
			s.logger.WarnContext(ctx, "registration rejected", "field", c.field)
			return nil, ConflictFor(c.field)
		}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, ErrEmptyPassword) {
			return nil, errutil.BadRequest(CodePasswordRequired, "Password is required.")
		}
		return nil, errutil.Internal("PASSWORD_HASH_FAILED", "failed to hash password", err)
	}

	account, err := NewAccount(NewAccountParams{
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		DisplayName:  in.DisplayName,
		Username:     username,
		Role:         RoleClient,
	})
	if err != nil {
		return nil, errutil.Internal("ACCOUNT_CREATE_FAILED", "failed to build account", err)
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if conflict, ok := asConflict(err); ok {
			s.logger.WarnContext(ctx, "registration lost a uniqueness race", "field", conflict.Field)
			return nil, conflict
		}
		return nil, errutil.Internal("ACCOUNT_CREATE_FAILED", "failed to create account", err)
	}

	s.logger.InfoContext(ctx, "account registered", "account_id", account.ID, "method", "direct")
	v := account.View()
	return &v, nil
}
