// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/blissfulweddings/blissful/internal/observability"
	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// dummyPasswordHash is verified when no account matches so that unknown
// identifiers cost the same as wrong passwords. It matches no password.
//
//nolint:gosec // G101: not a credential
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// LoginService authenticates identifier and password pairs.
type LoginService struct {
	accounts AccountRepository
	hasher   PasswordHasher
	tokens   SessionIssuer
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewLoginService creates a LoginService.
func NewLoginService(d Deps) (*LoginService, error) {
	if err := d.check(needAccounts | needHasher | needTokens); err != nil {
		return nil, err
	}
	return &LoginService{
		accounts: d.Accounts,
		hasher:   d.Hasher,
		tokens:   d.Tokens,
		logger:   d.Logger,
		metrics:  d.Metrics,
	}, nil
}

// Login matches identifier against email or phone and checks password.
// Unknown identifiers and wrong passwords fail with the same error.
func (s *LoginService) Login(ctx context.Context, identifier, password string) (session *Session, err error) {
	ctx, span := startSpan(ctx, "LoginService.Login")
	defer func() {
		endSpan(span, err)
		s.metrics.RecordAuthEvent("login", outcome(err))
	}()

	invalid := errutil.Unauthorized(CodeInvalidCredentials, MsgInvalidCredentials)

	identifier = strings.TrimSpace(identifier)
	account, lookupErr := s.accounts.GetByIdentifier(ctx, identifier)

	var target string
	switch {
	case lookupErr == nil:
		target = account.PasswordHash
	case errors.Is(lookupErr, ErrNotFound):
		target = dummyPasswordHash
	default:
		return nil, errutil.Internal("AUTH_LOGIN_FAILED", "failed to look up account", lookupErr)
	}

	valid, verifyErr := s.hasher.Verify(password, target)
	if account == nil {
		s.logger.InfoContext(ctx, "login failed", "reason", "unknown identifier")
		return nil, invalid
	}
	if verifyErr != nil {
		return nil, errutil.Internal("AUTH_LOGIN_FAILED", "failed to verify password", verifyErr)
	}
	if !valid {
		s.logger.InfoContext(ctx, "login failed", "account_id", account.ID, "reason", "password mismatch")
		return nil, invalid
	}

	if s.hasher.NeedsUpgrade(account.PasswordHash) {
		s.upgradeHash(ctx, account.ID, password)
	}

	token, err := s.tokens.Issue(account.Identity())
	if err != nil {
		return nil, errutil.Internal("AUTH_LOGIN_FAILED", "failed to issue session token", err)
	}

	s.logger.InfoContext(ctx, "login succeeded", "account_id", account.ID)
	return &Session{Token: token, Account: account.View()}, nil
}

// upgradeHash re-hashes a legacy password. Failures are logged and ignored.
func (s *LoginService) upgradeHash(ctx context.Context, id int64, password string) {
	hash, err := s.hasher.Hash(password)
	if err == nil {
		err = s.accounts.UpdatePasswordHash(ctx, id, hash)
	}
	if err != nil {
		errutil.LogError(s.logger, "password hash upgrade failed", err)
		return
	}
	s.logger.InfoContext(ctx, "password hash upgraded", "account_id", id)
}
