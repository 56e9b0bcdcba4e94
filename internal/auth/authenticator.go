// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/blissfulweddings/blissful/internal/observability"
	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// Authenticator resolves a bearer token into the caller's identity with the
// role currently stored for the account.
type Authenticator struct {
	accounts AccountRepository
	tokens   SessionIssuer
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(d Deps) (*Authenticator, error) {
	if err := d.check(needAccounts | needTokens); err != nil {
		return nil, err
	}
	return &Authenticator{
		accounts: d.Accounts,
		tokens:   d.Tokens,
		logger:   d.Logger,
		metrics:  d.Metrics,
	}, nil
}

// Authenticate verifies token and re-reads the account role. Expired and
// malformed tokens keep their distinct codes; any other verification
// failure is reported as AUTH_FAILED.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (id *Identity, err error) {
	ctx, span := startSpan(ctx, "Authenticator.Authenticate")
	defer func() {
		endSpan(span, err)
		a.metrics.RecordAuthEvent("authenticate", outcome(err))
	}()

	if token == "" {
		return nil, errutil.Unauthorized(CodeTokenRequired, MsgTokenRequired)
	}

	claims, err := a.tokens.Verify(token)
	if err != nil {
		if tagged, ok := errutil.As(err); ok && tagged.Kind == errutil.KindUnauthorized {
			return nil, tagged
		}
		errutil.LogError(a.logger, "token verification failed", err)
		return nil, errutil.Unauthorized(CodeAuthFailed, MsgAuthFailed)
	}

	role, err := a.accounts.GetRole(ctx, claims.AccountID)
	switch {
	case errors.Is(err, ErrNotFound):
		a.logger.WarnContext(ctx, "token for missing account", "account_id", claims.AccountID)
		return nil, errutil.Unauthorized(CodeAccountMissing, MsgAccountMissing)
	case err != nil:
		return nil, errutil.Internal("AUTH_ROLE_LOOKUP_FAILED", "failed to load account role", err)
	case !role.Valid():
		return nil, errutil.Unauthorized(CodeAccountMissing, MsgAccountMissing)
	}

	identity := claims.Identity()
	identity.Role = role
	return &identity, nil
}
