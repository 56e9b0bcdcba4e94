// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

// Package auth implements account identity for Blissful Weddings.
//
// # Domain Types
//
// Account is the durable record owned by an AccountRepository. Values that
// leave this package as results are AccountView, which never carries the
// password hash. NewAccount validates the contact invariant (email or phone)
// before a repository sees the value.
//
// # Services
//
//   - RegistrationService - direct signup with email and/or phone
//   - ChallengeService - SMS code issue, resend cool-down, verify and register
//   - LoginService - identifier and password login
//   - ProfileService - self-service profile and admin role changes
//   - Authenticator - bearer token verification with a live role lookup
//
// Services are created with New*Service constructors that validate their
// dependencies. Operational failures are returned as *errutil.Error values so
// the HTTP edge can map them to statuses without inspecting messages.
package auth
