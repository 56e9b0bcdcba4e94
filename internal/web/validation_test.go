// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blissfulweddings/blissful/pkg/errutil"
)

func newJSONRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestDecode_Valid(t *testing.T) {
	v := newValidator()
	req, err := decode[otpVerifyRequest](v, newJSONRequest(
		`{"phone_number":"+8562055512345","otp":"482913","password":"secret1","username":"annlee","extra":true}`))

	require.NoError(t, err)
	assert.Equal(t, "+8562055512345", req.PhoneNumber)
	assert.Equal(t, "482913", req.OTP)
	assert.Nil(t, req.FullName)
	require.NotNil(t, req.Username)
	assert.Equal(t, "annlee", *req.Username)
}

func TestDecode_CachesSchemaPerType(t *testing.T) {
	v := newValidator()
	_, err := decode[loginRequest](v, newJSONRequest(`{"identifier":"a","password":"b"}`))
	require.NoError(t, err)
	_, err = decode[loginRequest](v, newJSONRequest(`{"identifier":"c","password":"d"}`))
	require.NoError(t, err)
	_, err = decode[otpRequest](v, newJSONRequest(`{"phone_number":"+15551234567"}`))
	require.NoError(t, err)

	assert.Len(t, v.schemas, 2)
}

func TestDecode_Violations(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []FieldError
	}{
		{
			name: "every required field missing",
			body: `{}`,
			want: []FieldError{
				{Field: "otp", Message: "OTP is required"},
				{Field: "password", Message: "Password is required"},
				{Field: "phone_number", Message: "Phone number is required"},
			},
		},
		{
			name: "wrong type",
			body: `{"phone_number":12345,"otp":"482913","password":"secret1"}`,
			want: []FieldError{{Field: "phone_number", Message: "must be of type string"}},
		},
		{
			name: "overlong otp",
			body: `{"phone_number":"+15551234567","otp":"4829130","password":"secret1"}`,
			want: []FieldError{{Field: "otp", Message: "OTP must be 6 digits"}},
		},
		{
			name: "array body",
			body: `[]`,
			want: []FieldError{{Field: "body", Message: "must be of type object"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode[otpVerifyRequest](newValidator(), newJSONRequest(tt.body))

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.want, ve.Fields)
		})
	}
}

func TestDecode_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		req  *http.Request
		msg  string
	}{
		{"empty", newJSONRequest(""), "Request body is required."},
		{"truncated", newJSONRequest(`{"phone_number":`), "Request body must be valid JSON."},
		{"trailing data", newJSONRequest(`{} {}`), "Request body must be valid JSON."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode[otpRequest](newValidator(), tt.req)

			errutil.AssertKind(t, err, errutil.KindBadRequest)
			errutil.AssertErrorCode(t, err, CodeMalformedBody)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestDecode_BodyTooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	req := newJSONRequest(`{"phone_number":"+15551234567","padding":"` + strings.Repeat("x", 64) + `"}`)
	req.Body = http.MaxBytesReader(rec, req.Body, 16)

	_, err := decode[otpRequest](newValidator(), req)
	errutil.AssertErrorCode(t, err, CodeMalformedBody)
	assert.Equal(t, "Request body is too large.", err.Error())
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"Bearer", "", false},
		{"Bearer  ", "", false},
		{"Token abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Authorization", tt.header)
			token, ok := bearerToken(r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}
