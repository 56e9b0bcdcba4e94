// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/samber/oops"
)

// Role is an account's privilege level.
type Role string

// Roles, lowest privilege first.
const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts a stored or requested role name.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", oops.Code("AUTH_INVALID_ROLE").With("role", s).Errorf("unknown role %q", s)
	}
	return r, nil
}

// Account is a durable identity record.
type Account struct {
	ID              int64
	Email           *string
	Phone           *string
	PasswordHash    string `json:"-"`
	DisplayName     *string
	Username        *string
	Role            Role
	PhoneVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewAccountParams carries the fields accepted at account creation.
type NewAccountParams struct {
	Email           *string
	Phone           *string
	PasswordHash    string
	DisplayName     *string
	Username        *string
	Role            Role
	PhoneVerifiedAt *time.Time
}

// NewAccount validates params and returns an unsaved Account. Email is
// lower-cased, blank optional fields become nil and the role defaults to client.
func NewAccount(p NewAccountParams) (*Account, error) {
	email := normalizeEmail(p.Email)
	phone := trimmed(p.Phone)
	if email == nil && phone == nil {
		return nil, oops.Code("ACCOUNT_CONTACT_REQUIRED").Errorf("account needs an email or a phone number")
	}
	if p.PasswordHash == "" {
		return nil, oops.Code("ACCOUNT_INVALID_HASH").Errorf("password hash cannot be empty")
	}

	role := p.Role
	if role == "" {
		role = RoleClient
	}
	if !role.Valid() {
		return nil, oops.Code("AUTH_INVALID_ROLE").With("role", string(role)).Errorf("unknown role %q", role)
	}

	return &Account{
		Email:           email,
		Phone:           phone,
		PasswordHash:    p.PasswordHash,
		DisplayName:     trimmed(p.DisplayName),
		Username:        trimmed(p.Username),
		Role:            role,
		PhoneVerifiedAt: p.PhoneVerifiedAt,
	}, nil
}

// View returns the hash-free projection of the account.
func (a *Account) View() AccountView {
	return AccountView{
		ID:              a.ID,
		Email:           a.Email,
		Phone:           a.Phone,
		DisplayName:     a.DisplayName,
		Username:        a.Username,
		Role:            a.Role,
		PhoneVerifiedAt: a.PhoneVerifiedAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// Identity returns the session identity for the account.
func (a *Account) Identity() Identity {
	return Identity{
		AccountID: a.ID,
		Email:     a.Email,
		Phone:     a.Phone,
		Role:      a.Role,
	}
}

// AccountView is the account as returned to callers. It has no hash field.
type AccountView struct {
	ID              int64      `json:"accountId"`
	Email           *string    `json:"email"`
	Phone           *string    `json:"phone"`
	DisplayName     *string    `json:"displayName"`
	Username        *string    `json:"username"`
	Role            Role       `json:"role"`
	PhoneVerifiedAt *time.Time `json:"phoneVerifiedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// ProfileUpdate lists the self-service fields. Nil fields are left unchanged.
type ProfileUpdate struct {
	DisplayName *string
	Username    *string
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.DisplayName == nil && u.Username == nil
}

// AccountRepository persists accounts. Methods participate in a transaction
// when ctx carries one from Transactor.InTransaction.
type AccountRepository interface {
	// Create inserts account and fills ID and timestamps. A unique
	// violation is returned as *DuplicateError.
	Create(ctx context.Context, account *Account) error

	// GetByID returns ErrNotFound when no account has id.
	GetByID(ctx context.Context, id int64) (*Account, error)

	// GetByIdentifier matches identifier against email (case-insensitive)
	// or phone in a single lookup.
	GetByIdentifier(ctx context.Context, identifier string) (*Account, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsVerifiedPhone reports whether a phone-verified account owns phone.
	ExistsVerifiedPhone(ctx context.Context, phone string) (bool, error)

	// GetRole returns the current role, or ErrNotFound.
	GetRole(ctx context.Context, id int64) (Role, error)

	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*Account, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	UpdateRole(ctx context.Context, id int64, role Role) (*Account, error)
}

// Transactor runs fn inside a store transaction carried by the context passed
// to fn. fn returning an error rolls the transaction back.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PhonePattern accepts E.164 numbers with an optional leading plus.
const PhonePattern = `^\+?[1-9]\d{1,14}$`

var phoneRE = regexp.MustCompile(PhonePattern)

// ValidPhone reports whether phone looks like an E.164 number.
func ValidPhone(phone string) bool {
	return phoneRE.MatchString(phone)
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := NormalizeEmail(*email)
	if e == "" {
		return nil
	}
	return &e
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
