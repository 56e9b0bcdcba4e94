// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth

import (
	"errors"

	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Account fields that carry a uniqueness constraint.
const (
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldUsername = "username"
)

// Error codes surfaced through errutil.
const (
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodePhoneTaken         = "PHONE_TAKEN"
	CodeUsernameTaken      = "USERNAME_TAKEN"
	CodePhoneVerified      = "PHONE_ALREADY_VERIFIED"
	CodeInvalidPhone       = "PHONE_INVALID"
	CodeIdentifierRequired = "IDENTIFIER_REQUIRED"
	CodePasswordRequired   = "PASSWORD_REQUIRED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeResendTooSoon      = "CHALLENGE_RESEND_TOO_SOON"
	CodeChallengeInvalid   = "CHALLENGE_INVALID"
	CodeChallengeMismatch  = "CHALLENGE_MISMATCH"
	CodeTokenRequired      = "TOKEN_REQUIRED"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeAuthFailed         = "AUTH_FAILED"
	CodeAccountMissing     = "ACCOUNT_MISSING"
	CodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
	CodeInvalidRole        = "INVALID_ROLE"
	CodeEmptyProfileUpdate = "PROFILE_EMPTY_UPDATE"
	CodeForbidden          = "FORBIDDEN"
	CodeInternal           = "INTERNAL"
)

// User-facing messages.
const (
	MsgEmailTaken         = "Email address is already registered."
	MsgPhoneTaken         = "Phone number is already registered."
	MsgUsernameTaken      = "Username is already taken."
	MsgPhoneVerified      = "Phone number is already verified for another account."
	MsgInvalidPhone       = "Phone number format is invalid."
	MsgInvalidCredentials = "Invalid credentials."
	MsgChallengeInvalid   = "Verification code is invalid or expired."
	MsgChallengeMismatch  = "Verification code is incorrect."
	MsgTokenRequired      = "Authentication token required"
	MsgTokenExpired       = "Token expired"
	MsgTokenInvalid       = "Invalid token"
	MsgAuthFailed         = "Authentication failed"
	MsgAccountMissing     = "User associated with token not found or has no role."
	MsgAccountNotFound    = "Account not found."
	MsgForbidden          = "You do not have permission to perform this action."
)

// DuplicateError reports a unique-constraint violation on one account field.
// Repositories return it when the store rejects an insert or update.
type DuplicateError struct {
	Field string
	Err   error
}

func (e *DuplicateError) Error() string {
	return "duplicate account " + e.Field
}

func (e *DuplicateError) Unwrap() error {
	return e.Err
}

// ConflictFor builds the Conflict error for a duplicated field.
func ConflictFor(field string) *errutil.Error {
	switch field {
	case FieldEmail:
		return errutil.Conflict(CodeEmailTaken, MsgEmailTaken, FieldEmail)
	case FieldPhone:
		return errutil.Conflict(CodePhoneTaken, MsgPhoneTaken, FieldPhone)
	case FieldUsername:
		return errutil.Conflict(CodeUsernameTaken, MsgUsernameTaken, FieldUsername)
	default:
		return errutil.Conflict("ACCOUNT_CONFLICT", "Account already exists.", field)
	}
}

// asConflict converts a repository DuplicateError into its Conflict error.
func asConflict(err error) (*errutil.Error, bool) {
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return ConflictFor(dup.Field), true
	}
	return nil, false
}
