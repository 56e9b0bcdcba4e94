// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/blissfulweddings/blissful/internal/observability"
	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// Challenge timing.
const (
	ChallengeTTL   = 300 * time.Second
	ResendCooldown = 60 * time.Second
)

// StoredCode is a pending verification code keyed by phone number.
type StoredCode struct {
	Code      string `json:"code"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Expired reports whether the code is past its expiry at now.
func (c StoredCode) Expired(now time.Time) bool {
	return now.UnixMilli() >= c.ExpiresAt
}

// CodeStore holds at most one pending code per phone number.
type CodeStore interface {
	// Put replaces any pending code for phone. The entry expires after ttl.
	Put(ctx context.Context, phone string, code StoredCode, ttl time.Duration) error

	// RemainingTTL returns the time left on the pending code and false when
	// there is none.
	RemainingTTL(ctx context.Context, phone string) (time.Duration, bool, error)

	// Get returns ErrNotFound when no code is pending.
	Get(ctx context.Context, phone string) (*StoredCode, error)

	Delete(ctx context.Context, phone string) error
}

// CodeSender delivers a verification code to a phone number.
type CodeSender interface {
	SendCode(ctx context.Context, phone, code string) error
}

// VerifyChallengeInput completes a phone signup.
type VerifyChallengeInput struct {
	Phone       string
	Code        string
	Password    string
	DisplayName *string
	Username    *string
}

// ChallengeService runs the SMS code signup flow.
type ChallengeService struct {
	accounts AccountRepository
	tx       Transactor
	codes    CodeStore
	sender   CodeSender
	hasher   PasswordHasher
	tokens   SessionIssuer
	logger   *slog.Logger
	metrics  *observability.Metrics

	now      func() time.Time
	generate func() (string, error)
}

// NewChallengeService creates a ChallengeService.
func NewChallengeService(d Deps) (*ChallengeService, error) {
	if err := d.check(needAccounts | needTransactor | needCodes | needSender | needHasher | needTokens); err != nil {
		return nil, err
	}
	return &ChallengeService{
		accounts: d.Accounts,
		tx:       d.Transactor,
		codes:    d.Codes,
		sender:   d.Sender,
		hasher:   d.Hasher,
		tokens:   d.Tokens,
		logger:   d.Logger,
		metrics:  d.Metrics,
		now:      time.Now,
		generate: GenerateCode,
	}, nil
}

// RequestChallenge issues a new code for phone and sends it by SMS.
// A new code replaces the pending one only after ResendCooldown has passed.
func (s *ChallengeService) RequestChallenge(ctx context.Context, phone string) (err error) {
	ctx, span := startSpan(ctx, "ChallengeService.RequestChallenge")
	defer func() {
		endSpan(span, err)
		s.metrics.RecordAuthEvent("challenge_request", outcome(err))
	}()

	phone = strings.TrimSpace(phone)
	if !ValidPhone(phone) {
		return errutil.BadRequest(CodeInvalidPhone, MsgInvalidPhone)
	}

	verified, err := s.accounts.ExistsVerifiedPhone(ctx, phone)
	if err != nil {
		return errutil.Internal("ACCOUNT_LOOKUP_FAILED", "failed to check phone verification", err)
	}
	if verified {
		return errutil.Conflict(CodePhoneVerified, MsgPhoneVerified, FieldPhone)
	}

	remaining, pending, err := s.codes.RemainingTTL(ctx, phone)
	if err != nil {
		return errutil.Internal("CHALLENGE_STORE_FAILED", "failed to read pending code", err)
	}
	if wait := resendWait(remaining, pending); wait > 0 {
		s.logger.InfoContext(ctx, "challenge resend rejected", "wait_seconds", wait)
		return errutil.BadRequest(CodeResendTooSoon,
			fmt.Sprintf("Please wait %d seconds before requesting a new code.", wait)).WithRetryable()
	}

	code, err := s.generate()
	if err != nil {
		return errutil.Internal("CHALLENGE_CODE_FAILED", "failed to generate code", err)
	}

	stored := StoredCode{Code: code, ExpiresAt: s.now().Add(ChallengeTTL).UnixMilli()}
	if err := s.codes.Put(ctx, phone, stored, ChallengeTTL); err != nil {
		return errutil.Internal("CHALLENGE_STORE_FAILED", "failed to store code", err)
	}

	if err := s.sender.SendCode(ctx, phone, code); err != nil {
		if tagged, ok := errutil.As(err); ok && tagged.Kind.Operational() {
			return tagged
		}
		return errutil.Internal("CHALLENGE_SEND_FAILED", "failed to send verification code", err).WithRetryable()
	}

	s.logger.InfoContext(ctx, "challenge issued")
	return nil
}

// resendWait returns the whole seconds left before a new code may be issued.
func resendWait(remaining time.Duration, pending bool) int {
	if !pending {
		return 0
	}
	left := remaining - (ChallengeTTL - ResendCooldown)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}

// VerifyChallengeAndRegister consumes the pending code for in.Phone and
// creates a phone-verified client account. The code is single use: it is
// deleted before the account is written whether or not the write succeeds.
func (s *ChallengeService) VerifyChallengeAndRegister(ctx context.Context, in VerifyChallengeInput) (session *Session, err error) {
	ctx, span := startSpan(ctx, "ChallengeService.VerifyChallengeAndRegister")
	defer func() {
		endSpan(span, err)
		s.metrics.RecordAuthEvent("challenge_verify", outcome(err))
	}()

	phone := strings.TrimSpace(in.Phone)
	invalid := errutil.BadRequest(CodeChallengeInvalid, MsgChallengeInvalid)

	if !ValidCodeFormat(in.Code) {
		return nil, invalid
	}

	stored, err := s.codes.Get(ctx, phone)
	if errors.Is(err, ErrNotFound) {
		return nil, invalid
	}
	if err != nil {
		return nil, errutil.Internal("CHALLENGE_STORE_FAILED", "failed to read pending code", err)
	}
	if stored.Expired(s.now()) {
		return nil, invalid
	}
	if subtle.ConstantTimeCompare([]byte(stored.Code), []byte(in.Code)) != 1 {
		s.logger.InfoContext(ctx, "challenge code mismatch")
		return nil, errutil.BadRequest(CodeChallengeMismatch, MsgChallengeMismatch)
	}

	if err := s.codes.Delete(ctx, phone); err != nil {
		return nil, errutil.Internal("CHALLENGE_STORE_FAILED", "failed to consume code", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, ErrEmptyPassword) {
			return nil, errutil.BadRequest(CodePasswordRequired, "Password is required.")
		}
		return nil, errutil.Internal("PASSWORD_HASH_FAILED", "failed to hash password", err)
	}

	var account *Account
	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		taken, err := s.accounts.ExistsByPhone(ctx, phone)
		if err != nil {
			return errutil.Internal("ACCOUNT_LOOKUP_FAILED", "failed to check phone availability", err)
		}
		if taken {
			return ConflictFor(FieldPhone)
		}
		if username := trimmed(in.Username); username != nil {
			taken, err := s.accounts.ExistsByUsername(ctx, *username)
			if err != nil {
				return errutil.Internal("ACCOUNT_LOOKUP_FAILED", "failed to check username availability", err)
			}
			if taken {
				return ConflictFor(FieldUsername)
			}
		}

		verifiedAt := s.now().UTC()
		account, err = NewAccount(NewAccountParams{
			Phone:           &phone,
			PasswordHash:    hash,
			DisplayName:     in.DisplayName,
			Username:        in.Username,
			Role:            RoleClient,
			PhoneVerifiedAt: &verifiedAt,
		})
		if err != nil {
			return errutil.Internal("ACCOUNT_CREATE_FAILED", "failed to build account", err)
		}
		if err := s.accounts.Create(ctx, account); err != nil {
			if conflict, ok := asConflict(err); ok {
				return conflict
			}
			return errutil.Internal("ACCOUNT_CREATE_FAILED", "failed to create account", err)
		}
		return nil
	})
	if err != nil {
		if tagged, ok := errutil.As(err); ok {
			return nil, tagged
		}
		return nil, errutil.Internal("ACCOUNT_CREATE_FAILED", "registration transaction failed", err)
	}

	token, err := s.tokens.Issue(account.Identity())
	if err != nil {
		return nil, errutil.Internal("TOKEN_ISSUE_FAILED", "failed to issue session token", err)
	}

	s.logger.InfoContext(ctx, "account registered", "account_id", account.ID, "method", "challenge")
	return &Session{Token: token, Account: account.View()}, nil
}
