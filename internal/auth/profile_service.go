// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// ProfileService reads and updates accounts on behalf of their owners and
// administrators.
type ProfileService struct {
	accounts AccountRepository
	logger   *slog.Logger
}

// NewProfileService creates a ProfileService.
func NewProfileService(d Deps) (*ProfileService, error) {
	if err := d.check(needAccounts); err != nil {
		return nil, err
	}
	return &ProfileService{accounts: d.Accounts, logger: d.Logger}, nil
}

// Me returns the caller's own account.
func (s *ProfileService) Me(ctx context.Context, accountID int64) (*AccountView, error) {
	return s.Get(ctx, accountID)
}

// Get returns any account by id.
func (s *ProfileService) Get(ctx context.Context, id int64) (view *AccountView, err error) {
	ctx, span := startSpan(ctx, "ProfileService.Get", attribute.Int64("account_id", id))
	defer func() { endSpan(span, err) }()

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(err)
	}
	v := account.View()
	return &v, nil
}

// UpdateMe changes the caller's display name or username. Blank values
// clear the field.
func (s *ProfileService) UpdateMe(ctx context.Context, accountID int64, update ProfileUpdate) (view *AccountView, err error) {
	ctx, span := startSpan(ctx, "ProfileService.UpdateMe", attribute.Int64("account_id", accountID))
	defer func() { endSpan(span, err) }()

	if update.Empty() {
		return nil, errutil.BadRequest(CodeEmptyProfileUpdate, "Nothing to update.")
	}

	if update.Username != nil {
		name := strings.TrimSpace(*update.Username)
		update.Username = &name
		if name != "" {
			current, err := s.accounts.GetByID(ctx, accountID)
			if err != nil {
				return nil, s.lookupError(err)
			}
			if current.Username == nil || *current.Username != name {
				taken, err := s.accounts.ExistsByUsername(ctx, name)
				if err != nil {
					return nil, errutil.Internal("ACCOUNT_LOOKUP_FAILED", "failed to check username availability", err)
				}
				if taken {
					return nil, ConflictFor(FieldUsername)
				}
			}
		}
	}
	if update.DisplayName != nil {
		name := strings.TrimSpace(*update.DisplayName)
		update.DisplayName = &name
	}

	account, err := s.accounts.UpdateProfile(ctx, accountID, update)
	if err != nil {
		if conflict, ok := asConflict(err); ok {
			return nil, conflict
		}
		return nil, s.lookupError(err)
	}

	s.logger.InfoContext(ctx, "profile updated", "account_id", accountID)
	v := account.View()
	return &v, nil
}

// ChangeRole sets an account's role. The authentication gate reads the role
// on every request, so the change applies to tokens already issued.
func (s *ProfileService) ChangeRole(ctx context.Context, id int64, role string) (view *AccountView, err error) {
	ctx, span := startSpan(ctx, "ProfileService.ChangeRole",
		attribute.Int64("account_id", id),
		attribute.String("role", role))
	defer func() { endSpan(span, err) }()

	r, err := ParseRole(role)
	if err != nil {
		return nil, errutil.BadRequest(CodeInvalidRole, "Role must be one of: client, admin.")
	}

	account, err := s.accounts.UpdateRole(ctx, id, r)
	if err != nil {
		return nil, s.lookupError(err)
	}

	actor := int64(0)
	if caller, ok := IdentityFromContext(ctx); ok {
		actor = caller.AccountID
	}
	s.logger.InfoContext(ctx, "account role changed", "account_id", id, "role", r.String(), "actor_id", actor)
	v := account.View()
	return &v, nil
}

func (s *ProfileService) lookupError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return errutil.NotFound(CodeAccountNotFound, MsgAccountNotFound)
	}
	return errutil.Internal("ACCOUNT_LOOKUP_FAILED", "failed to load account", err)
}
