// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// MsgInternal is the only message production clients see for internal errors.
const MsgInternal = "An unexpected internal server error occurred."

type successBody struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type errorBody struct {
	Status     string       `json:"status"`
	StatusCode int          `json:"statusCode"`
	Code       string       `json:"code,omitempty"`
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"`
}

var kindStatus = map[errutil.Kind]int{
	errutil.KindInternal:        http.StatusInternalServerError,
	errutil.KindBadRequest:      http.StatusBadRequest,
	errutil.KindUnauthorized:    http.StatusUnauthorized,
	errutil.KindForbidden:       http.StatusForbidden,
	errutil.KindNotFound:        http.StatusNotFound,
	errutil.KindConflict:        http.StatusConflict,
	errutil.KindTooManyRequests: http.StatusTooManyRequests,
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind errutil.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) success(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successBody{Status: "success", Data: data})
}

// fail renders err as an error envelope and logs it. Internal errors show
// their real message only outside production.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	logger := requestLogger(r.Context(), s.logger)

	var ve *ValidationError
	if errors.As(err, &ve) {
		logger.InfoContext(r.Context(), "request validation failed", "path", r.URL.Path, "fields", len(ve.Fields))
		writeJSON(w, http.StatusBadRequest, errorBody{
			Status:     "error",
			StatusCode: http.StatusBadRequest,
			Code:       CodeValidationFailed,
			Message:    "Validation failed",
			Errors:     ve.Fields,
		})
		return
	}

	errutil.LogError(logger, "request failed", err)

	body := errorBody{Status: "error"}
	if tagged, ok := errutil.As(err); ok {
		body.StatusCode = StatusFor(tagged.Kind)
		body.Code = tagged.Code
		body.Message = tagged.Message
		if tagged.Kind == errutil.KindInternal {
			body.Message = s.internalMessage(err)
		}
	} else {
		body.StatusCode = http.StatusInternalServerError
		body.Message = s.internalMessage(err)
	}
	writeJSON(w, body.StatusCode, body)
}

func (s *Server) internalMessage(err error) string {
	if s.opts.Production {
		return MsgInternal
	}
	return err.Error()
}
