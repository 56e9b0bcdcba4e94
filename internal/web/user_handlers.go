// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/blissfulweddings/blissful/internal/auth"
	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// CodeInvalidAccountID rejects a non-numeric or out-of-range account id.
const CodeInvalidAccountID = "INVALID_ACCOUNT_ID"

// handleGetMe handles GET /api/users/me.
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	view, err := s.profiles.Me(r.Context(), id.AccountID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.success(w, http.StatusOK, userData{User: view})
}

// handleUpdateMe handles PUT /api/users/me.
func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	req, err := decode[updateProfileRequest](s.validator, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	id, _ := auth.IdentityFromContext(r.Context())
	view, err := s.profiles.UpdateMe(r.Context(), id.AccountID, auth.ProfileUpdate{
		DisplayName: req.FullName,
		Username:    req.Username,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.success(w, http.StatusOK, userData{User: view})
}

// handleGetUser handles GET /api/users/{id}.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathAccountID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	view, err := s.profiles.Get(r.Context(), accountID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.success(w, http.StatusOK, userData{User: view})
}

// handleChangeRole handles PUT /api/users/{id}/role.
func (s *Server) handleChangeRole(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathAccountID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	req, err := decode[changeRoleRequest](s.validator, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	view, err := s.profiles.ChangeRole(r.Context(), accountID, req.Role)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.success(w, http.StatusOK, userData{User: view})
}

func pathAccountID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errutil.BadRequest(CodeInvalidAccountID, "Account id must be a positive integer.")
	}
	return id, nil
}
