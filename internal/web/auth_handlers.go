// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package web

import (
	"net/http"

	"github.com/blissfulweddings/blissful/internal/auth"
)

// MsgChallengeSent confirms a code request without revealing delivery details.
const MsgChallengeSent = "OTP sent successfully."

// MsgLoggedOut tells the client to discard its token. Sessions are stateless
// and stay valid until they expire.
const MsgLoggedOut = "Logged out. Discard the token on the client; it remains valid until it expires."

type userData struct {
	User *auth.AccountView `json:"user"`
}

type messageData struct {
	Message string `json:"message"`
}

// handleRegister handles POST /api/auth/register.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	req, err := decode[registerRequest](s.validator, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	view, err := s.register.Register(r.Context(), auth.RegisterInput{
		Email:       req.Email,
		Phone:       req.PhoneNumber,
		Password:    req.Password,
		DisplayName: req.FullName,
		Username:    req.Username,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.success(w, http.StatusCreated, userData{User: view})
}

// handleLogin handles POST /api/auth/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, err := decode[loginRequest](s.validator, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	session, err := s.login.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.success(w, http.StatusOK, session)
}

// handleRequestOTP handles POST /api/auth/otp/request.
func (s *Server) handleRequestOTP(w http.ResponseWriter, r *http.Request) {
	req, err := decode[otpRequest](s.validator, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if err := s.challenge.RequestChallenge(r.Context(), req.PhoneNumber); err != nil {
		s.fail(w, r, err)
		return
	}
	s.success(w, http.StatusOK, messageData{Message: MsgChallengeSent})
}

// handleVerifyOTP handles POST /api/auth/otp/verify.
func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	req, err := decode[otpVerifyRequest](s.validator, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	session, err := s.challenge.VerifyChallengeAndRegister(r.Context(), auth.VerifyChallengeInput{
		Phone:       req.PhoneNumber,
		Code:        req.OTP,
		Password:    req.Password,
		DisplayName: req.FullName,
		Username:    req.Username,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.success(w, http.StatusCreated, session)
}

// handleLogout handles POST /api/auth/logout.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if id, ok := auth.IdentityFromContext(r.Context()); ok {
		requestLogger(r.Context(), s.logger).InfoContext(r.Context(), "logout requested", "account_id", id.AccountID)
	}
	s.success(w, http.StatusOK, messageData{Message: MsgLoggedOut})
}
