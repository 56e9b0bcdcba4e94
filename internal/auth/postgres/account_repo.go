// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/blissfulweddings/blissful/internal/auth"
)

const accountColumns = `id, email, phone, password_hash, display_name, username,
	       role::text, phone_verified_at, created_at, updated_at`

// constraintFields maps unique constraints to the account field they guard.
var constraintFields = map[string]string{
	"accounts_email_key":    auth.FieldEmail,
	"accounts_phone_key":    auth.FieldPhone,
	"accounts_username_key": auth.FieldUsername,
}

// AccountRepository implements auth.AccountRepository using PostgreSQL.
type AccountRepository struct {
	db DB
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts account and fills its ID and timestamps.
func (r *AccountRepository) Create(ctx context.Context, account *auth.Account) error {
	row := conn(ctx, r.db).QueryRow(ctx, `
		INSERT INTO accounts (email, phone, password_hash, display_name, username, role, phone_verified_at)
		VALUES ($1, $2, $3, $4, $5, $6::account_role, $7)
		RETURNING id, created_at, updated_at
	`,
		account.Email,
		account.Phone,
		account.PasswordHash,
		account.DisplayName,
		account.Username,
		account.Role.String(),
		account.PhoneVerifiedAt,
	)
	if err := row.Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt); err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return oops.Code("ACCOUNT_CREATE_FAILED").
			With("operation", "insert account").
			Wrap(err)
	}
	return nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*auth.Account, error) {
	row := conn(ctx, r.db).QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").With("id", id).Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ACCOUNT_GET_FAILED").With("id", id).Wrap(err)
	}
	return account, nil
}

// GetByIdentifier matches identifier against email (case-insensitive) or phone.
func (r *AccountRepository) GetByIdentifier(ctx context.Context, identifier string) (*auth.Account, error) {
	row := conn(ctx, r.db).QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE email = LOWER($1) OR phone = $1
		ORDER BY id
		LIMIT 1
	`, identifier)

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ACCOUNT_GET_FAILED").
			With("operation", "get account by identifier").
			Wrap(err)
	}
	return account, nil
}

// ExistsByEmail reports whether an account uses email.
func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = LOWER($1))`, email)
}

// ExistsByPhone reports whether any account, verified or not, uses phone.
func (r *AccountRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "phone", `SELECT EXISTS(SELECT 1 FROM accounts WHERE phone = $1)`, phone)
}

// ExistsByUsername reports whether an account uses username.
func (r *AccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", `SELECT EXISTS(SELECT 1 FROM accounts WHERE username = $1)`, username)
}

// ExistsVerifiedPhone reports whether a phone-verified account owns phone.
func (r *AccountRepository) ExistsVerifiedPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "verified phone",
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE phone = $1 AND phone_verified_at IS NOT NULL)`, phone)
}

func (r *AccountRepository) exists(ctx context.Context, what, sql, arg string) (bool, error) {
	var found bool
	if err := conn(ctx, r.db).QueryRow(ctx, sql, arg).Scan(&found); err != nil {
		return false, oops.Code("ACCOUNT_EXISTS_FAILED").
			With("operation", "check "+what).
			Wrap(err)
	}
	return found, nil
}

// GetRole returns the stored role for id.
func (r *AccountRepository) GetRole(ctx context.Context, id int64) (auth.Role, error) {
	var role string
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT role::text FROM accounts WHERE id = $1`, id).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", oops.Code("ACCOUNT_NOT_FOUND").With("id", id).Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return "", oops.Code("ACCOUNT_ROLE_FAILED").With("id", id).Wrap(err)
	}
	return auth.Role(role), nil
}

// UpdateProfile applies the non-nil fields of update. An empty string
// clears the column.
func (r *AccountRepository) UpdateProfile(ctx context.Context, id int64, update auth.ProfileUpdate) (*auth.Account, error) {
	row := conn(ctx, r.db).QueryRow(ctx, `
		UPDATE accounts SET
			display_name = CASE WHEN $2::boolean THEN NULLIF($3, '') ELSE display_name END,
			username     = CASE WHEN $4::boolean THEN NULLIF($5, '') ELSE username END
		WHERE id = $1
		RETURNING `+accountColumns,
		id,
		update.DisplayName != nil, deref(update.DisplayName),
		update.Username != nil, deref(update.Username),
	)

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").With("id", id).Wrap(auth.ErrNotFound)
	}
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return nil, dup
		}
		return nil, oops.Code("ACCOUNT_UPDATE_FAILED").With("id", id).Wrap(err)
	}
	return account, nil
}

// UpdatePasswordHash replaces the stored hash.
func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `UPDATE accounts SET password_hash = $2 WHERE id = $1`, id, hash)
	if err != nil {
		return oops.Code("ACCOUNT_UPDATE_FAILED").
			With("operation", "update password hash").
			With("id", id).
			Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return oops.Code("ACCOUNT_NOT_FOUND").With("id", id).Wrap(auth.ErrNotFound)
	}
	return nil
}

// UpdateRole sets the role of id and returns the updated account.
func (r *AccountRepository) UpdateRole(ctx context.Context, id int64, role auth.Role) (*auth.Account, error) {
	row := conn(ctx, r.db).QueryRow(ctx, `
		UPDATE accounts SET role = $2::account_role
		WHERE id = $1
		RETURNING `+accountColumns, id, role.String())

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").With("id", id).Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ACCOUNT_UPDATE_FAILED").
			With("operation", "update role").
			With("id", id).
			Wrap(err)
	}
	return account, nil
}

func scanAccount(row pgx.Row) (*auth.Account, error) {
	var (
		a    auth.Account
		role string
	)
	if err := row.Scan(
		&a.ID,
		&a.Email,
		&a.Phone,
		&a.PasswordHash,
		&a.DisplayName,
		&a.Username,
		&role,
		&a.PhoneVerifiedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck // callers wrap with operation context
	}
	a.Role = auth.Role(role)
	return &a, nil
}

// duplicateError converts a unique violation into *auth.DuplicateError, or
// returns nil for any other error.
func duplicateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	field, ok := constraintFields[pgErr.ConstraintName]
	if !ok {
		return nil
	}
	return &auth.DuplicateError{Field: field, Err: err}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
