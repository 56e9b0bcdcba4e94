// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package web

import (
	"net/http"
	"strings"

	"github.com/blissfulweddings/blissful/internal/auth"
	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// bearerToken returns the credential of an "Authorization: Bearer" header.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// authenticate rejects requests without a valid session token and attaches
// the caller's identity, with the role read from the account store, to the
// request context.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			s.fail(w, r, errutil.Unauthorized(auth.CodeTokenRequired, auth.MsgTokenRequired))
			return
		}
		id, err := s.tokens.Authenticate(r.Context(), token)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
	})
}

// RequireRoles admits only identities holding one of roles. A request with
// no identity attached is forbidden, so it must run after authentication.
func (s *Server) RequireRoles(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.IdentityFromContext(r.Context())
			if !ok {
				requestLogger(r.Context(), s.logger).WarnContext(r.Context(), "role check without identity", "path", r.URL.Path)
				s.fail(w, r, errutil.Forbidden(auth.CodeForbidden, auth.MsgForbidden))
				return
			}
			if !id.HasRole(roles...) {
				requestLogger(r.Context(), s.logger).WarnContext(r.Context(), "role check failed",
					"account_id", id.AccountID, "role", id.Role.String(), "path", r.URL.Path)
				s.fail(w, r, errutil.Forbidden(auth.CodeForbidden, auth.MsgForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
