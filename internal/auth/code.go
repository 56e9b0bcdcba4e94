// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/samber/oops"
)

// CodeLength is the number of digits in a verification code.
const CodeLength = 6

var (
	codeFloor = big.NewInt(100000)
	codeSpan  = big.NewInt(900000)
)

// GenerateCode returns a uniformly random six-digit code with no leading zero.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpan)
	if err != nil {
		return "", oops.Code("CHALLENGE_CODE_FAILED").Wrap(err)
	}
	return fmt.Sprintf("%06d", n.Add(n, codeFloor).Int64()), nil
}

// ValidCodeFormat reports whether code is exactly six ASCII digits.
func ValidCodeFormat(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
