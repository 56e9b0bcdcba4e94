// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/samber/oops"

	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// Session token constants. They are fixed for every issued token.
const (
	TokenIssuer   = "blissful-weddings-api"
	TokenAudience = "blissful-weddings-clients"
	TokenLifetime = 24 * time.Hour

	// MinSecretLen is the shortest accepted signing secret.
	MinSecretLen = 10
)

// Claims is the signed session payload.
type Claims struct {
	AccountID int64   `json:"accountId"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Role      Role    `json:"role"`
	jwt.RegisteredClaims
}

// Identity returns the identity encoded in the claims.
func (c *Claims) Identity() Identity {
	return Identity{
		AccountID: c.AccountID,
		Email:     c.Email,
		Phone:     c.Phone,
		Role:      c.Role,
	}
}

// SessionIssuer signs and verifies session tokens.
type SessionIssuer interface {
	// Issue signs a token for id that expires after TokenLifetime.
	Issue(id Identity) (string, error)

	// Verify returns the claims of a valid token. Expired tokens fail with
	// code TOKEN_EXPIRED and every other defect with TOKEN_INVALID.
	Verify(token string) (*Claims, error)
}

// JWTIssuer implements SessionIssuer with HS256 JWTs.
type JWTIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewJWTIssuer creates an issuer signing with secret.
func NewJWTIssuer(secret string) (*JWTIssuer, error) {
	if len(secret) < MinSecretLen {
		return nil, oops.Code("TOKEN_SECRET_INVALID").
			With("min_length", MinSecretLen).
			Errorf("token secret must be at least %d characters", MinSecretLen)
	}
	return &JWTIssuer{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs a token for id.
func (j *JWTIssuer) Issue(id Identity) (string, error) {
	if id.AccountID <= 0 {
		return "", errutil.Internal("TOKEN_SIGN_FAILED", "cannot issue a token without an account", nil)
	}

	now := j.now()
	claims := Claims{
		AccountID: id.AccountID,
		Email:     id.Email,
		Phone:     id.Phone,
		Role:      id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id.AccountID, 10),
			Issuer:    TokenIssuer,
			Audience:  jwt.ClaimStrings{TokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", errutil.Internal("TOKEN_SIGN_FAILED", "failed to sign session token", err)
	}
	return signed, nil
}

// Verify parses and validates token.
func (j *JWTIssuer) Verify(token string) (*Claims, error) {
	if token == "" {
		return nil, errutil.Unauthorized(CodeTokenInvalid, MsgTokenInvalid)
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithAudience(TokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errutil.Unauthorized(CodeTokenExpired, MsgTokenExpired)
		}
		return nil, errutil.Unauthorized(CodeTokenInvalid, MsgTokenInvalid)
	}

	if claims.AccountID <= 0 || claims.Subject != strconv.FormatInt(claims.AccountID, 10) {
		return nil, errutil.Unauthorized(CodeTokenInvalid, MsgTokenInvalid)
	}
	return claims, nil
}
