// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth

import "time"

// SetChallengeClock replaces the service clock.
func SetChallengeClock(s *ChallengeService, now func() time.Time) {
	s.now = now
}

// SetChallengeGenerator replaces the code generator.
func SetChallengeGenerator(s *ChallengeService, generate func() (string, error)) {
	s.generate = generate
}

const DummyPasswordHash = dummyPasswordHash
